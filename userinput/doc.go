// This file is part of gpretro.
//
// gpretro is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpretro is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gpretro.  If not, see <https://www.gnu.org/licenses/>.

// Package userinput describes input from real hardware that the user of
// gpretro is using to control the core.
//
// Events are produced by a GUI implementation and collected through the
// EventSource interface. The package hides the details of the GUI
// implementation so that the consumer of events is not tied to any one
// system.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput
