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
	"encoding/binary"
	"fmt"
)

// WordsPerValue is the number of 32-bit transport words per 64-bit value.
const WordsPerValue = 2

// Words splits x into its low and high 32-bit halves.
func (x Fixed) Words() (lo, hi uint32) {
	return SplitWords(uint64(x))
}

// FromWords reassembles a Fixed from its low and high 32-bit halves.
func FromWords(lo, hi uint32) Fixed {
	return Fixed(JoinWords(lo, hi))
}

// SplitWords splits a 64-bit value into low and high 32-bit words.
func SplitWords(v uint64) (lo, hi uint32) {
	return uint32(v), uint32(v >> 32)
}

// JoinWords joins low and high 32-bit words into a 64-bit value.
func JoinWords(lo, hi uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// AppendWords appends the two transport words of x to dst, low word first.
func AppendWords(dst []uint32, x Fixed) []uint32 {
	lo, hi := x.Words()
	return append(dst, lo, hi)
}

// DecodeWords decodes a Fixed from exactly two words, low word first.
func DecodeWords(src []uint32) (Fixed, error) {
	if len(src) != WordsPerValue {
		return 0, fmt.Errorf("decode fixed: got %d words, want %d: %w", len(src), WordsPerValue, ErrInvalidInput)
	}
	return FromWords(src[0], src[1]), nil
}

// AppendBytes appends the 8-byte little-endian encoding of x to dst. The
// byte order matches the word order: the low word's bytes come first.
func AppendBytes(dst []byte, x Fixed) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(x))
}

// DecodeBytes decodes a Fixed from exactly 8 little-endian bytes.
func DecodeBytes(b []byte) (Fixed, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("decode fixed: got %d bytes, want 8: %w", len(b), ErrInvalidInput)
	}
	return Fixed(binary.LittleEndian.Uint64(b)), nil
}
