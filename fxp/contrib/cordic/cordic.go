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

package cordic

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-fxkernels/fxp"
)

const (
	// DefaultIterations is the number of pseudo-rotations used by Default.
	DefaultIterations = 20

	// MaxIterations is the length of the generated arctangent table.
	MaxIterations = len(atanTable)
)

// Gain is the fixed-point gain compensation constant K, the product of
// cos(atan(2^-i)) over all iterations.
const Gain = gain

// Default is the shared rotator with DefaultIterations steps.
var Default = mustRotator(DefaultIterations)

// Table returns a copy of the generated arctangent table, atan(2^-i) for
// i in [0, MaxIterations).
func Table() []fxp.Fixed {
	t := make([]fxp.Fixed, MaxIterations)
	copy(t, atanTable[:])
	return t
}

// Rotator computes sine and cosine with a fixed number of CORDIC steps. A
// Rotator is immutable and safe for concurrent use.
type Rotator struct {
	table []fxp.Fixed
	gain  fxp.Fixed
}

// NewRotator returns a rotator that runs iterations steps using the generated
// arctangent table. iterations must be in [0, MaxIterations].
func NewRotator(iterations int) (*Rotator, error) {
	if iterations < 0 || iterations > MaxIterations {
		return nil, fmt.Errorf("cordic: %d iterations outside [0, %d]: %w", iterations, MaxIterations, fxp.ErrInvalidInput)
	}
	fxp.Logger().Debug("cordic: rotator built", "iterations", iterations)
	return &Rotator{table: atanTable[:iterations:iterations], gain: Gain}, nil
}

// NewRotatorWithTable returns a rotator that runs one step per table entry.
// The table is copied; entry i must be the angle turned at step i, i.e.
// atan(2^-i) for a conventional rotator.
func NewRotatorWithTable(table []fxp.Fixed) *Rotator {
	t := make([]fxp.Fixed, len(table))
	copy(t, table)
	return &Rotator{table: t, gain: Gain}
}

func mustRotator(iterations int) *Rotator {
	r, err := NewRotator(iterations)
	if err != nil {
		panic(err)
	}
	return r
}

// Iterations returns the number of pseudo-rotations per call.
func (r *Rotator) Iterations() int {
	return len(r.table)
}

// Rotate returns the sine and cosine of theta.
//
// With zero iterations the result is the seed vector (0, K) exactly.
func (r *Rotator) Rotate(theta fxp.Fixed) (sin, cos fxp.Fixed) {
	c, s := r.gain, fxp.Fixed(0)
	for i, step := range r.table {
		// Both updates read the cosine from before this step.
		cOld := c
		if theta > 0 {
			theta -= step
			c -= s >> uint(i)
			s += cOld >> uint(i)
		} else {
			theta += step
			c += s >> uint(i)
			s -= cOld >> uint(i)
		}
	}
	return s, c
}

// SinCos is Rotate for float64 radians. The input is converted to fixed point
// first, so it is subject to the same range and accuracy limits.
func (r *Rotator) SinCos(rad float64) (sin, cos float64) {
	s, c := r.Rotate(fxp.FromFloat(rad))
	return s.Float(), c.Float()
}

// RotateWords takes theta as two 32-bit words, low word first, and returns
// cosine and sine as four words: cos low, cos high, sin low, sin high.
func (r *Rotator) RotateWords(src []uint32) ([4]uint32, error) {
	theta, err := fxp.DecodeWords(src)
	if err != nil {
		return [4]uint32{}, fmt.Errorf("cordic: theta: %w", err)
	}
	s, c := r.Rotate(theta)
	var out [4]uint32
	out[0], out[1] = c.Words()
	out[2], out[3] = s.Words()
	return out, nil
}

// ConvergenceLimit returns Σ atan(2^-i) over the rotator's table, the largest
// |theta| the rotator can drive to zero.
func (r *Rotator) ConvergenceLimit() float64 {
	var sum fxp.Fixed
	for _, step := range r.table {
		sum += step
	}
	return sum.Float()
}

// residualBound is the worst-case angle left over after n steps.
func residualBound(n int) float64 {
	if n == 0 {
		return math.Pi
	}
	return math.Atan(math.Ldexp(1, -(n - 1)))
}
