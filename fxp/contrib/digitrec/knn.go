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

import "github.com/ajroetker/go-fxkernels/fxp"

const (
	// Sentinel fills empty KBest slots; it exceeds every real distance.
	Sentinel = Bits + 1

	// DefaultK is the number of nearest neighbors voted on by default.
	DefaultK = 3
)

// Distance returns the Hamming distance between a and b, the number of
// pixels that differ. It is in [0, 49] for valid digits.
func Distance(a, b Digit) int {
	return fxp.PopCount64(uint64(a ^ b))
}

// KBest holds the K smallest distances seen so far, ascending.
type KBest []uint8

// NewKBest returns a KBest of length k filled with Sentinel.
func NewKBest(k int) KBest {
	kb := make(KBest, k)
	kb.Reset()
	return kb
}

// Reset fills every slot with Sentinel.
func (kb KBest) Reset() {
	for i := range kb {
		kb[i] = Sentinel
	}
}

// Worst returns the largest retained distance.
func (kb KBest) Worst() int {
	return int(kb[len(kb)-1])
}

// Insert offers dist to the array. If it beats the worst slot, it replaces
// that slot and moves left until the array is ascending again. Distances
// outside [0, Bits] are ignored.
func (kb KBest) Insert(dist int) {
	last := len(kb) - 1
	if last < 0 || dist < 0 || dist > Bits || dist >= int(kb[last]) {
		return
	}
	kb[last] = uint8(dist)
	for i := last; i > 0 && kb[i] < kb[i-1]; i-- {
		kb[i], kb[i-1] = kb[i-1], kb[i]
	}
}

// UpdateKNN offers the distance between query and one training instance to
// kb.
func UpdateKNN(query, train Digit, kb KBest) {
	kb.Insert(Distance(query, train))
}
