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
	"testing"
)

// fixture is a synthetic training set: each class is a random prototype
// bitmap plus noisy copies. Prototypes are at least minSpread pixels apart.
type fixture struct {
	prototypes [NumClasses]Digit
	set        *TrainingSet
	rng        *rand.Rand
}

const (
	minSpread     = 16
	trainPerClass = 20
	trainNoise    = 3
)

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{rng: rand.New(rand.NewSource(7))}

	for j := 0; j < NumClasses; {
		p := Digit(f.rng.Uint64()) & Mask
		ok := true
		for _, q := range f.prototypes[:j] {
			if Distance(p, q) < minSpread {
				ok = false
				break
			}
		}
		if ok {
			f.prototypes[j] = p
			j++
		}
	}

	classes := make([][]Digit, NumClasses)
	for j, p := range f.prototypes {
		for range trainPerClass {
			classes[j] = append(classes[j], f.noisy(p, trainNoise))
		}
	}
	set, err := NewTrainingSet(classes)
	if err != nil {
		t.Fatal(err)
	}
	f.set = set
	return f
}

// noisy flips up to n random pixels of d.
func (f *fixture) noisy(d Digit, n int) Digit {
	for range f.rng.Intn(n + 1) {
		d ^= 1 << f.rng.Intn(Bits)
	}
	return d
}

// queries returns labeled noisy copies of the prototypes.
func (f *fixture) queries(perClass, noise int) []Sample {
	var out []Sample
	for j, p := range f.prototypes {
		for range perClass {
			out = append(out, Sample{Label: j, Digit: f.noisy(p, noise)})
		}
	}
	return out
}
