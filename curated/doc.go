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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies the error. Packages that return curated
// errors export the patterns as constants so that callers can test for them
// with Is() and Has(). For example:
//
//	const OpenError = "loader: cannot open %s: %v"
//
//	e := curated.Errorf(OpenError, path, err)
//
//	if curated.Is(e, OpenError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Curated errors also implement Unwrap() so that the
// standard errors.Is() and errors.As() functions can inspect any error value
// given as a placeholder value.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping an error created with the
// pattern "loader: %v" in another "loader: %v" will print:
//
//	loader: symbol missing
//
// and not:
//
//	loader: loader: symbol missing
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
