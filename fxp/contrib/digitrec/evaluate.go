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

	"github.com/ajroetker/go-fxkernels/fxp"
)

// Accuracy summarizes classification of labeled samples.
type Accuracy struct {
	Total  int
	Errors int

	// Confusion[want][got] counts samples of digit want classified as got.
	Confusion [NumClasses][NumClasses]int
}

// ErrorRate returns Errors/Total, or 0 for no samples.
func (a Accuracy) ErrorRate() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Errors) / float64(a.Total)
}

// Evaluate classifies every sample and tallies the mistakes.
func Evaluate(c *Classifier, samples []Sample) (Accuracy, error) {
	qs := make([]Digit, len(samples))
	for i, s := range samples {
		if s.Label < 0 || s.Label >= NumClasses {
			return Accuracy{}, fmt.Errorf("digitrec: sample %d: label %d out of range: %w", i, s.Label, fxp.ErrInvalidInput)
		}
		qs[i] = s.Digit
	}
	got, err := c.ClassifyBatch(qs)
	if err != nil {
		return Accuracy{}, err
	}

	acc := Accuracy{Total: len(samples)}
	for i, s := range samples {
		acc.Confusion[s.Label][got[i]]++
		if got[i] != s.Label {
			acc.Errors++
		}
	}
	return acc, nil
}
