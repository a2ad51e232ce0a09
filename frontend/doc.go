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

// Package frontend is the host side of the core's callback ABI. It answers
// the core's environment commands, presents video frames to a gui.Surface,
// streams audio to an AudioDevice and translates host input events into the
// state the core polls.
//
// Everything in the package runs on one goroutine. The core calls back into
// the frontend synchronously from inside RunLoop.Run() and never from
// anywhere else. Callbacks must not call back into the RunLoop.
//
// The components share a single Context, owned by the RunLoop:
//
//	ctx := frontend.NewContext()
//	env := frontend.NewEnvironment(ctx, options, systemDir, saveDir)
//	vid := frontend.NewVideoPresenter(ctx, surface)
//	aud := frontend.NewAudioSink(opener)
//	inp := frontend.NewInputBridge(ctx, events)
//	rl := frontend.NewRunLoop(ctx, env, vid, aud, inp)
//
// The RunLoop implements the retro.Host interface and can be passed directly
// to a module loader.
package frontend
