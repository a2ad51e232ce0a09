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

package retro

// Key is a keyboard key as understood by the core. Values are used by the
// keyboard callback and by the input state callback when the device is
// DeviceKeyboard.
type Key uint32

// List of core key values.
const (
	KeyUnknown      Key = 0
	KeyBackspace    Key = 8
	KeyTab          Key = 9
	KeyClear        Key = 12
	KeyReturn       Key = 13
	KeyPause        Key = 19
	KeyEscape       Key = 27
	KeySpace        Key = 32
	KeyExclaim      Key = 33
	KeyQuoteDbl     Key = 34
	KeyHash         Key = 35
	KeyDollar       Key = 36
	KeyAmpersand    Key = 38
	KeyQuote        Key = 39
	KeyLeftParen    Key = 40
	KeyRightParen   Key = 41
	KeyAsterisk     Key = 42
	KeyPlus         Key = 43
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeyColon        Key = 58
	KeySemicolon    Key = 59
	KeyLess         Key = 60
	KeyEquals       Key = 61
	KeyGreater      Key = 62
	KeyQuestion     Key = 63
	KeyAt           Key = 64
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyCaret        Key = 94
	KeyUnderscore   Key = 95
	KeyBackquote    Key = 96
	KeyA            Key = 97
	KeyB            Key = 98
	KeyC            Key = 99
	KeyD            Key = 100
	KeyE            Key = 101
	KeyF            Key = 102
	KeyG            Key = 103
	KeyH            Key = 104
	KeyI            Key = 105
	KeyJ            Key = 106
	KeyK            Key = 107
	KeyL            Key = 108
	KeyM            Key = 109
	KeyN            Key = 110
	KeyO            Key = 111
	KeyP            Key = 112
	KeyQ            Key = 113
	KeyR            Key = 114
	KeyS            Key = 115
	KeyT            Key = 116
	KeyU            Key = 117
	KeyV            Key = 118
	KeyW            Key = 119
	KeyX            Key = 120
	KeyY            Key = 121
	KeyZ            Key = 122
	KeyLeftBrace    Key = 123
	KeyBar          Key = 124
	KeyRightBrace   Key = 125
	KeyTilde        Key = 126
	KeyDelete       Key = 127

	KeyKP0        Key = 256
	KeyKP1        Key = 257
	KeyKP2        Key = 258
	KeyKP3        Key = 259
	KeyKP4        Key = 260
	KeyKP5        Key = 261
	KeyKP6        Key = 262
	KeyKP7        Key = 263
	KeyKP8        Key = 264
	KeyKP9        Key = 265
	KeyKPPeriod   Key = 266
	KeyKPDivide   Key = 267
	KeyKPMultiply Key = 268
	KeyKPMinus    Key = 269
	KeyKPPlus     Key = 270
	KeyKPEnter    Key = 271
	KeyKPEquals   Key = 272

	KeyUp       Key = 273
	KeyDown     Key = 274
	KeyRight    Key = 275
	KeyLeft     Key = 276
	KeyInsert   Key = 277
	KeyHome     Key = 278
	KeyEnd      Key = 279
	KeyPageUp   Key = 280
	KeyPageDown Key = 281

	KeyF1  Key = 282
	KeyF2  Key = 283
	KeyF3  Key = 284
	KeyF4  Key = 285
	KeyF5  Key = 286
	KeyF6  Key = 287
	KeyF7  Key = 288
	KeyF8  Key = 289
	KeyF9  Key = 290
	KeyF10 Key = 291
	KeyF11 Key = 292
	KeyF12 Key = 293
	KeyF13 Key = 294
	KeyF14 Key = 295
	KeyF15 Key = 296

	KeyNumLock    Key = 300
	KeyCapsLock   Key = 301
	KeyScrollLock Key = 302
	KeyRShift     Key = 303
	KeyLShift     Key = 304
	KeyRCtrl      Key = 305
	KeyLCtrl      Key = 306
	KeyRAlt       Key = 307
	KeyLAlt       Key = 308
	KeyRMeta      Key = 309
	KeyLMeta      Key = 310
	KeyLSuper     Key = 311
	KeyRSuper     Key = 312
	KeyMode       Key = 313
	KeyCompose    Key = 314
	KeyHelp       Key = 315
	KeyPrint      Key = 316
	KeySysReq     Key = 317
	KeyBreak      Key = 318
	KeyMenu       Key = 319
	KeyPower      Key = 320
	KeyEuro       Key = 321
	KeyUndo       Key = 322
	KeyOEM102     Key = 323

	// one more than the highest key value
	KeyLast Key = 324
)

// Modifier bits passed to the keyboard callback. Values can be combined.
const (
	ModNone       uint16 = 0x0000
	ModShift      uint16 = 0x0001
	ModCtrl       uint16 = 0x0002
	ModAlt        uint16 = 0x0004
	ModMeta       uint16 = 0x0008
	ModNumLock    uint16 = 0x0010
	ModCapsLock   uint16 = 0x0020
	ModScrollLock uint16 = 0x0040
)
