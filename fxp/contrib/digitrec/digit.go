// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digitrec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-fxkernels/fxp"
)

const (
	// Width and Height are the bitmap dimensions in pixels.
	Width  = 7
	Height = 7

	// Bits is the number of pixels in a Digit.
	Bits = Width * Height

	// Mask selects the pixel bits of a Digit.
	Mask Digit = 1<<Bits - 1

	// NumClasses is the number of digit classes, 0 through 9.
	NumClasses = 10
)

// Digit is a 7×7 binary image. Pixel (r, c) is bit r*Width+c; bits 49 and
// above must be zero.
type Digit uint64

// Valid reports whether d has no bits outside Mask.
func (d Digit) Valid() bool {
	return d&^Mask == 0
}

// Pixel reports whether the pixel at row r, column c is set.
func (d Digit) Pixel(r, c int) bool {
	return d>>(r*Width+c)&1 != 0
}

// Set returns d with the pixel at row r, column c set.
func (d Digit) Set(r, c int) Digit {
	return d | 1<<(r*Width+c)
}

// String renders d as seven lines of '#' (set) and '.' (clear).
func (d Digit) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for r := range Height {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Width {
			if d.Pixel(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Hex formats d as a 0x-prefixed hexadecimal literal.
func (d Digit) Hex() string {
	return fmt.Sprintf("%#013x", uint64(d))
}

// FromWords reassembles a Digit from two 32-bit words, low word first.
// Only the low 17 bits of hi may be set.
func FromWords(lo, hi uint32) (Digit, error) {
	d := Digit(fxp.JoinWords(lo, hi))
	if !d.Valid() {
		return 0, fmt.Errorf("digitrec: bitmap %#x has bits above bit %d: %w", uint64(d), Bits-1, fxp.ErrInvalidInput)
	}
	return d, nil
}

// DecodeWords decodes a Digit from exactly two words, low word first.
func DecodeWords(src []uint32) (Digit, error) {
	if len(src) != fxp.WordsPerValue {
		return 0, fmt.Errorf("digitrec: got %d words, want %d: %w", len(src), fxp.WordsPerValue, fxp.ErrInvalidInput)
	}
	return FromWords(src[0], src[1])
}

// Words splits d into two 32-bit words, low word first.
func (d Digit) Words() (lo, hi uint32) {
	return fxp.SplitWords(uint64(d))
}

// ParseDigit parses a bitmap in one of two forms: a hexadecimal literal, with
// or without a 0x prefix, or seven lines of seven characters where '#', 'X'
// and '1' mark set pixels and '.', '_' and '0' mark clear ones.
func ParseDigit(s string) (Digit, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "\n") {
		return parseHex(s)
	}

	lines := strings.Split(s, "\n")
	if len(lines) != Height {
		return 0, fmt.Errorf("digitrec: bitmap has %d rows, want %d: %w", len(lines), Height, fxp.ErrInvalidInput)
	}
	var d Digit
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Width {
			return 0, fmt.Errorf("digitrec: row %d has %d pixels, want %d: %w", r, len(line), Width, fxp.ErrInvalidInput)
		}
		for c := range Width {
			switch line[c] {
			case '#', 'X', '1':
				d = d.Set(r, c)
			case '.', '_', '0':
			default:
				return 0, fmt.Errorf("digitrec: row %d: bad pixel %q: %w", r, line[c], fxp.ErrInvalidInput)
			}
		}
	}
	return d, nil
}

func parseHex(s string) (Digit, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("digitrec: parse bitmap %q: %w", s, fxp.ErrInvalidInput)
	}
	d := Digit(v)
	if !d.Valid() {
		return 0, fmt.Errorf("digitrec: bitmap %#x has bits above bit %d: %w", v, Bits-1, fxp.ErrInvalidInput)
	}
	return d, nil
}
