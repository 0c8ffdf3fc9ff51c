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
	"math/rand"
	"slices"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Digit
		want int
	}{
		{"identical", 0x1c2040810204, 0x1c2040810204, 0},
		{"one_pixel", 0, 1, 1},
		{"complement", 0, Mask, Bits},
		{"disjoint", 0b1010, 0b0101, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%#x, %#x) = %d, want %d", uint64(tt.a), uint64(tt.b), got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		a := Digit(rng.Uint64()) & Mask
		b := Digit(rng.Uint64()) & Mask
		d := Distance(a, b)
		if d != Distance(b, a) {
			t.Fatalf("Distance(%#x, %#x) not symmetric", uint64(a), uint64(b))
		}
		if d < 0 || d > Bits {
			t.Fatalf("Distance(%#x, %#x) = %d outside [0, %d]", uint64(a), uint64(b), d, Bits)
		}
		if Distance(a, a) != 0 {
			t.Fatalf("Distance(a, a) = %d for %#x", Distance(a, a), uint64(a))
		}
	}
}

func TestNewKBest(t *testing.T) {
	kb := NewKBest(4)
	if len(kb) != 4 {
		t.Fatalf("len = %d, want 4", len(kb))
	}
	for i, v := range kb {
		if v != Sentinel {
			t.Errorf("kb[%d] = %d, want %d", i, v, Sentinel)
		}
	}
	if kb.Worst() != Sentinel {
		t.Errorf("Worst() = %d, want %d", kb.Worst(), Sentinel)
	}
}

func TestKBestInsert(t *testing.T) {
	tests := []struct {
		name  string
		k     int
		dists []int
		want  KBest
	}{
		{"empty", 3, nil, KBest{50, 50, 50}},
		{"fills_in_order", 3, []int{7, 3, 5}, KBest{3, 5, 7}},
		{"drops_worse", 3, []int{1, 2, 3, 9}, KBest{1, 2, 3}},
		{"replaces_worst", 3, []int{4, 5, 6, 0}, KBest{0, 4, 5}},
		{"duplicates", 3, []int{2, 2, 2, 2}, KBest{2, 2, 2}},
		{"k1", 1, []int{9, 4, 6, 1, 3}, KBest{1}},
		{"max_distance", 2, []int{49}, KBest{49, 50}},
		{"negative_ignored", 2, []int{-1, 4}, KBest{4, 50}},
		{"above_bits_ignored", 2, []int{50, 300, 7}, KBest{7, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKBest(tt.k)
			for _, d := range tt.dists {
				kb.Insert(d)
			}
			if !slices.Equal(kb, tt.want) {
				t.Errorf("after %v: %v, want %v", tt.dists, kb, tt.want)
			}
		})
	}
}

// TestKBestPrefixInvariant checks that after every prefix of insertions the
// array is ascending and holds the K smallest distances of that prefix.
func TestKBestPrefixInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, k := range []int{1, 2, 3, 5, 8} {
		kb := NewKBest(k)
		var seen []int
		for range 200 {
			d := rng.Intn(Bits + 1)
			kb.Insert(d)
			seen = append(seen, d)

			want := slices.Clone(seen)
			slices.Sort(want)
			for len(want) < k {
				want = append(want, Sentinel)
			}
			want = want[:k]

			for i := range k {
				if int(kb[i]) != want[i] {
					t.Fatalf("k=%d after %d inserts: %v, want %v", k, len(seen), kb, want)
				}
			}
		}
	}
}

func TestKBestReset(t *testing.T) {
	kb := NewKBest(3)
	kb.Insert(1)
	kb.Insert(2)
	kb.Reset()
	if !slices.Equal(kb, KBest{Sentinel, Sentinel, Sentinel}) {
		t.Errorf("after Reset: %v", kb)
	}
}

func TestUpdateKNN(t *testing.T) {
	kb := NewKBest(2)
	q := Digit(0b1111)
	UpdateKNN(q, 0b1111, kb)
	UpdateKNN(q, 0b0000, kb)
	UpdateKNN(q, 0b0111, kb)
	if !slices.Equal(kb, KBest{0, 1}) {
		t.Errorf("kb = %v, want [0 1]", kb)
	}
}

func BenchmarkDistance(b *testing.B) {
	a, c := Digit(0x1c2040810204), Digit(0x0f0f0f0f0f0f)
	var sink int
	for b.Loop() {
		sink += Distance(a, c)
		a++
	}
	_ = sink
}
