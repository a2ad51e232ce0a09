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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a neater help message and a consistent way of
// reporting the outcome of parsing.
//
// Flags are added with the Add*() functions before calling Parse(). For
// example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.Usage("[flags] <core> <content>")
//	logging := md.AddBool("log", false, "echo log to console")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(1)
//	}
//
// The positional arguments that follow the flags can be retrieved with
// GetArg() or RemainingArgs().
//
// The help message is printed automatically on -help or -h. When a usage
// string has been specified with Usage() it replaces the "Usage:" line of the
// flag package. Additional text can be added to the end of the help message
// with AdditionalHelp().
package modalflag
