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
	"errors"
	"testing"

	"github.com/ajroetker/go-fxkernels/fxp"
)

const five = `
#######
#......
#......
######.
......#
......#
######.`

func TestParseDigitArt(t *testing.T) {
	d, err := ParseDigit(five)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Valid() {
		t.Fatalf("parsed digit %#x not valid", uint64(d))
	}
	if !d.Pixel(0, 0) || !d.Pixel(0, 6) || d.Pixel(1, 1) || !d.Pixel(4, 6) || d.Pixel(6, 6) {
		t.Errorf("wrong pixels:\n%s", d)
	}
	if got, want := d.String(), five[1:]; got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if got := fxp.PopCount64(uint64(d)); got != 7+1+1+6+1+1+6 {
		t.Errorf("popcount = %d", got)
	}
}

func TestParseDigitHex(t *testing.T) {
	tests := []struct {
		in   string
		want Digit
	}{
		{"0x1c2040810204", 0x1c2040810204},
		{"1c2040810204", 0x1c2040810204},
		{"0X1", 1},
		{"  0x1ffffffffffff ", Mask},
	}
	for _, tt := range tests {
		got, err := ParseDigit(tt.in)
		if err != nil {
			t.Errorf("ParseDigit(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDigit(%q) = %#x, want %#x", tt.in, uint64(got), uint64(tt.want))
		}
	}
}

func TestParseDigitInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"0xzz",
		"0x2000000000000", // bit 49
		"#######\n#######",
		"#######\n#######\n#######\n#######\n#######\n#######\n######",
		"#######\n#######\n#######\n###?###\n#######\n#######\n#######",
	} {
		if _, err := ParseDigit(in); !errors.Is(err, fxp.ErrInvalidInput) {
			t.Errorf("ParseDigit(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestDigitHex(t *testing.T) {
	d := Digit(0x1c2040810204)
	if got := d.Hex(); got != "0x01c2040810204" {
		t.Errorf("Hex() = %q", got)
	}
	back, err := ParseDigit(d.Hex())
	if err != nil || back != d {
		t.Errorf("ParseDigit(Hex()) = %#x, %v", uint64(back), err)
	}
}

func TestDigitWords(t *testing.T) {
	d := Mask
	lo, hi := d.Words()
	if lo != 0xffffffff || hi != 0x1ffff {
		t.Errorf("Words() = (%#x, %#x), want (0xffffffff, 0x1ffff)", lo, hi)
	}
	got, err := FromWords(lo, hi)
	if err != nil || got != d {
		t.Errorf("FromWords = %#x, %v", uint64(got), err)
	}

	if _, err := FromWords(0, 0x20000); !errors.Is(err, fxp.ErrInvalidInput) {
		t.Errorf("FromWords with bit 49 set: error = %v, want ErrInvalidInput", err)
	}
	if _, err := DecodeWords([]uint32{1}); !errors.Is(err, fxp.ErrInvalidInput) {
		t.Errorf("DecodeWords(1 word): error = %v, want ErrInvalidInput", err)
	}
	if got, err := DecodeWords([]uint32{5, 1}); err != nil || got != 1<<32|5 {
		t.Errorf("DecodeWords([5 1]) = %#x, %v", uint64(got), err)
	}
}
