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

package keymap

import "github.com/jetsetilly/gpretro/retro"

// NoJoypad is returned by Joypad() for a key with no joypad mapping.
const NoJoypad = -1

var joypadMap = map[Key]int{
	KeyA:         retro.JoypadA,
	KeyB:         retro.JoypadB,
	KeyL:         retro.JoypadL,
	KeyR:         retro.JoypadR,
	KeyX:         retro.JoypadX,
	KeyY:         retro.JoypadY,
	KeyUp:        retro.JoypadUp,
	KeyDown:      retro.JoypadDown,
	KeyLeft:      retro.JoypadLeft,
	KeyRight:     retro.JoypadRight,
	KeyReturn:    retro.JoypadStart,
	KeyBackspace: retro.JoypadSelect,
}

var retroMap = map[Key]retro.Key{
	KeyBackspace: retro.KeyBackspace,
	KeyTab:       retro.KeyTab,
	KeyClear:     retro.KeyClear,
	KeyReturn:    retro.KeyReturn,
	KeyPause:     retro.KeyPause,
	KeyEscape:    retro.KeyEscape,
	KeySpace:     retro.KeySpace,

	KeyApostrophe: retro.KeyQuote,
	KeyComma:      retro.KeyComma,
	KeyMinus:      retro.KeyMinus,
	KeyPeriod:     retro.KeyPeriod,
	KeySlash:      retro.KeySlash,
	KeySemicolon:  retro.KeySemicolon,
	KeyEquals:     retro.KeyEquals,
	KeyBackslash:  retro.KeyBackslash,
	KeyGrave:      retro.KeyBackquote,
	KeyDelete:     retro.KeyDelete,

	KeyLeftBracket:  retro.KeyLeftBracket,
	KeyRightBracket: retro.KeyRightBracket,

	Key0: retro.Key0,
	Key1: retro.Key1,
	Key2: retro.Key2,
	Key3: retro.Key3,
	Key4: retro.Key4,
	Key5: retro.Key5,
	Key6: retro.Key6,
	Key7: retro.Key7,
	Key8: retro.Key8,
	Key9: retro.Key9,

	KeyA: retro.KeyA,
	KeyB: retro.KeyB,
	KeyC: retro.KeyC,
	KeyD: retro.KeyD,
	KeyE: retro.KeyE,
	KeyF: retro.KeyF,
	KeyG: retro.KeyG,
	KeyH: retro.KeyH,
	KeyI: retro.KeyI,
	KeyJ: retro.KeyJ,
	KeyK: retro.KeyK,
	KeyL: retro.KeyL,
	KeyM: retro.KeyM,
	KeyN: retro.KeyN,
	KeyO: retro.KeyO,
	KeyP: retro.KeyP,
	KeyQ: retro.KeyQ,
	KeyR: retro.KeyR,
	KeyS: retro.KeyS,
	KeyT: retro.KeyT,
	KeyU: retro.KeyU,
	KeyV: retro.KeyV,
	KeyW: retro.KeyW,
	KeyX: retro.KeyX,
	KeyY: retro.KeyY,
	KeyZ: retro.KeyZ,

	KeyKP0:        retro.KeyKP0,
	KeyKP1:        retro.KeyKP1,
	KeyKP2:        retro.KeyKP2,
	KeyKP3:        retro.KeyKP3,
	KeyKP4:        retro.KeyKP4,
	KeyKP5:        retro.KeyKP5,
	KeyKP6:        retro.KeyKP6,
	KeyKP7:        retro.KeyKP7,
	KeyKP8:        retro.KeyKP8,
	KeyKP9:        retro.KeyKP9,
	KeyKPPeriod:   retro.KeyKPPeriod,
	KeyKPDivide:   retro.KeyKPDivide,
	KeyKPMultiply: retro.KeyKPMultiply,
	KeyKPMinus:    retro.KeyKPMinus,
	KeyKPPlus:     retro.KeyKPPlus,
	KeyKPEnter:    retro.KeyKPEnter,
	KeyKPEquals:   retro.KeyKPEquals,

	KeyUp:       retro.KeyUp,
	KeyDown:     retro.KeyDown,
	KeyRight:    retro.KeyRight,
	KeyLeft:     retro.KeyLeft,
	KeyInsert:   retro.KeyInsert,
	KeyHome:     retro.KeyHome,
	KeyEnd:      retro.KeyEnd,
	KeyPageUp:   retro.KeyPageUp,
	KeyPageDown: retro.KeyPageDown,

	KeyF1:  retro.KeyF1,
	KeyF2:  retro.KeyF2,
	KeyF3:  retro.KeyF3,
	KeyF4:  retro.KeyF4,
	KeyF5:  retro.KeyF5,
	KeyF6:  retro.KeyF6,
	KeyF7:  retro.KeyF7,
	KeyF8:  retro.KeyF8,
	KeyF9:  retro.KeyF9,
	KeyF10: retro.KeyF10,
	KeyF11: retro.KeyF11,
	KeyF12: retro.KeyF12,
	KeyF13: retro.KeyF13,
	KeyF14: retro.KeyF14,
	KeyF15: retro.KeyF15,

	KeyNumLock:     retro.KeyNumLock,
	KeyCapsLock:    retro.KeyCapsLock,
	KeyScrollLock:  retro.KeyScrollLock,
	KeyPrintScreen: retro.KeyPrint,
	KeySysReq:      retro.KeySysReq,
	KeyMenu:        retro.KeyMenu,
	KeyApplication: retro.KeyCompose,
	KeyHelp:        retro.KeyHelp,
	KeyPower:       retro.KeyPower,
	KeyUndo:        retro.KeyUndo,

	KeyNonUSBackslash: retro.KeyOEM102,

	KeyRShift: retro.KeyRShift,
	KeyLShift: retro.KeyLShift,
	KeyRCtrl:  retro.KeyRCtrl,
	KeyLCtrl:  retro.KeyLCtrl,
	KeyLAlt:   retro.KeyLAlt,
	KeyRAlt:   retro.KeyRAlt,
	KeyRMeta:  retro.KeyRMeta,
	KeyLMeta:  retro.KeyLMeta,
}

// the lookup tables are built from the maps above. every entry not in a map
// is the sentinel value for that table
var (
	joypadTable [KeyCount]int
	retroTable  [KeyCount]retro.Key
)

func init() {
	for i := range joypadTable {
		joypadTable[i] = NoJoypad
		retroTable[i] = retro.KeyUnknown
	}
	for k, v := range joypadMap {
		joypadTable[k] = v
	}
	for k, v := range retroMap {
		retroTable[k] = v
	}
}

// Joypad returns the joypad button identifier for the host key. Returns
// NoJoypad if the key has no joypad mapping.
func Joypad(key Key) int {
	if int(key) >= KeyCount {
		return NoJoypad
	}
	return joypadTable[key]
}

// Retro returns the core key value for the host key. Returns
// retro.KeyUnknown if the key has no mapping.
func Retro(key Key) retro.Key {
	if int(key) >= KeyCount {
		return retro.KeyUnknown
	}
	return retroTable[key]
}
