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

package glyph

import (
	"fmt"

	"github.com/ajroetker/go-fxkernels/fxp"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/digitrec"
)

// sizes are the em sizes, in pixels, cycled through by TrainingSet.
var sizes = []float64{14, 18, 22, 28, 36}

// Variant returns the face and size of the i-th rendering of each digit in
// a synthetic training set.
func Variant(i int) (Face, float64) {
	return Face(i % int(numFaces)), sizes[(i/int(numFaces))%len(sizes)]
}

// TrainingSet renders each digit variants times, cycling through the Go font
// faces and a range of sizes, and returns the bitmaps as a training set.
func TrainingSet(variants int) (*digitrec.TrainingSet, error) {
	if variants < 1 {
		return nil, fmt.Errorf("glyph: %d variants per digit: %w", variants, fxp.ErrDegenerateModel)
	}
	classes := make([][]digitrec.Digit, digitrec.NumClasses)
	for j := range classes {
		for i := range variants {
			d, err := RenderDigit(j, i)
			if err != nil {
				return nil, err
			}
			classes[j] = append(classes[j], d)
		}
	}
	fxp.Logger().Debug("glyph: synthetic training set", "variants", variants)
	return digitrec.NewTrainingSet(classes)
}

// RenderDigit renders digit j (0..9) as the i-th variant and converts it to
// a bitmap.
func RenderDigit(j, i int) (digitrec.Digit, error) {
	if j < 0 || j >= digitrec.NumClasses {
		return 0, fmt.Errorf("glyph: digit %d out of range: %w", j, fxp.ErrInvalidInput)
	}
	face, size := Variant(i)
	mask, err := Render(face, rune('0'+j), size)
	if err != nil {
		return 0, err
	}
	return ToDigit(mask, DefaultThreshold), nil
}
