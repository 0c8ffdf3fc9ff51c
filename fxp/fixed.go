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
	"math"
	"strconv"
)

const (
	// FracBits is the number of fractional bits in a Fixed.
	FracBits = 61

	// TotalBits is the storage width of a Fixed.
	TotalBits = 64

	// IntBits is the number of integer bits, sign included.
	IntBits = TotalBits - FracBits
)

// Fixed is a signed Q3.61 fixed-point number.
type Fixed int64

const (
	// One is 1.0.
	One Fixed = 1 << FracBits

	// MaxFixed is the largest representable value, just under 4.0.
	MaxFixed Fixed = math.MaxInt64

	// MinFixed is -4.0.
	MinFixed Fixed = math.MinInt64
)

// scale is 2^FracBits as a float64; exact since it is a power of two.
const scale = float64(One)

// FromFloat converts f to the nearest Fixed, saturating at MinFixed and
// MaxFixed. NaN converts to 0.
func FromFloat(f float64) Fixed {
	if math.IsNaN(f) {
		return 0
	}
	r := math.Round(f * scale)
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if r >= -float64(math.MinInt64) {
		return MaxFixed
	}
	if r <= float64(math.MinInt64) {
		return MinFixed
	}
	return Fixed(r)
}

// Float returns the value as a float64. Precision beyond 53 significant bits
// is rounded away.
func (x Fixed) Float() float64 {
	return float64(x) / scale
}

// Add returns x + y.
func (x Fixed) Add(y Fixed) Fixed { return x + y }

// Sub returns x - y.
func (x Fixed) Sub(y Fixed) Fixed { return x - y }

// Neg returns -x.
func (x Fixed) Neg() Fixed { return -x }

// Shr returns x arithmetically shifted right by n bits, i.e. x / 2^n rounded
// toward negative infinity.
func (x Fixed) Shr(n uint) Fixed { return x >> n }

// Abs returns |x|. Abs(MinFixed) wraps to MinFixed.
func (x Fixed) Abs() Fixed {
	if x < 0 {
		return -x
	}
	return x
}

// String formats the value in decimal with enough digits to round-trip a
// float64.
func (x Fixed) String() string {
	return strconv.FormatFloat(x.Float(), 'g', -1, 64)
}
