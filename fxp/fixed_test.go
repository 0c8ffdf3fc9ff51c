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

package fxp

import (
	"errors"
	"math"
	"testing"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Fixed
	}{
		{"zero", 0, 0},
		{"one", 1, One},
		{"minus_one", -1, -One},
		{"half", 0.5, One >> 1},
		{"lsb", 1.0 / scale, 1},
		{"half_lsb_rounds_away", 0.5 / scale, 1},
		{"pi_over_4", math.Pi / 4, 0x1921fb54442d1800},
		{"saturate_high", 4, MaxFixed},
		{"saturate_low", -5, MinFixed},
		{"min_exact", -4, MinFixed},
		{"inf", math.Inf(1), MaxFixed},
		{"neg_inf", math.Inf(-1), MinFixed},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFloat(tt.in); got != tt.want {
				t.Errorf("FromFloat(%v) = %#x, want %#x", tt.in, int64(got), int64(tt.want))
			}
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.25, math.Pi, -math.Pi, 0.6072529350088812, 3.999} {
		got := FromFloat(f).Float()
		if math.Abs(got-f) > 1e-15 {
			t.Errorf("FromFloat(%v).Float() = %v", f, got)
		}
	}
}

func TestShrIsArithmetic(t *testing.T) {
	tests := []struct {
		in   Fixed
		n    uint
		want Fixed
	}{
		{One, 1, One / 2},
		{-One, 1, -One / 2},
		{-One, FracBits, -1},
		{-1, 5, -1},
		{1, 5, 0},
		{MinFixed, 63, -1},
	}
	for _, tt := range tests {
		if got := tt.in.Shr(tt.n); got != tt.want {
			t.Errorf("(%#x).Shr(%d) = %#x, want %#x", int64(tt.in), tt.n, int64(got), int64(tt.want))
		}
	}
}

func TestArithmeticPreservesScale(t *testing.T) {
	a := FromFloat(1.25)
	b := FromFloat(0.5)
	if got := a.Add(b).Float(); got != 1.75 {
		t.Errorf("1.25 + 0.5 = %v", got)
	}
	if got := a.Sub(b).Float(); got != 0.75 {
		t.Errorf("1.25 - 0.5 = %v", got)
	}
	if got := b.Neg().Float(); got != -0.5 {
		t.Errorf("-(0.5) = %v", got)
	}
	if got := b.Neg().Abs(); got != b {
		t.Errorf("|-0.5| = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := FromFloat(0.75).String(); got != "0.75" {
		t.Errorf("String() = %q, want %q", got, "0.75")
	}
}

func TestWords(t *testing.T) {
	x := Fixed(-0x0123456789abcdef)
	lo, hi := x.Words()
	if got := FromWords(lo, hi); got != x {
		t.Fatalf("FromWords(Words(x)) = %#x, want %#x", int64(got), int64(x))
	}
	if lo != uint32(uint64(x)) || hi != uint32(uint64(x)>>32) {
		t.Errorf("Words() = (%#x, %#x), low word must come first", lo, hi)
	}

	words := AppendWords(nil, x)
	got, err := DecodeWords(words)
	if err != nil {
		t.Fatalf("DecodeWords: %v", err)
	}
	if got != x {
		t.Errorf("DecodeWords = %#x, want %#x", int64(got), int64(x))
	}
}

func TestDecodeWordsInvalid(t *testing.T) {
	for _, words := range [][]uint32{nil, {1}, {1, 2, 3}} {
		if _, err := DecodeWords(words); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DecodeWords(%v) error = %v, want ErrInvalidInput", words, err)
		}
	}
}

func TestBytes(t *testing.T) {
	x := FromFloat(-math.Pi / 3)
	b := AppendBytes(nil, x)
	if len(b) != 8 {
		t.Fatalf("AppendBytes produced %d bytes", len(b))
	}
	lo, _ := x.Words()
	if b[0] != byte(lo) {
		t.Errorf("first byte = %#x, want low byte %#x", b[0], byte(lo))
	}
	got, err := DecodeBytes(b)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got != x {
		t.Errorf("DecodeBytes = %v, want %v", got, x)
	}
	if _, err := DecodeBytes(b[:7]); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("DecodeBytes(7 bytes) error = %v, want ErrInvalidInput", err)
	}
}
