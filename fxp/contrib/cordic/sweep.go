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
	"math"

	"github.com/ajroetker/go-fxkernels/fxp"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/workerpool"
)

// Sample is one angle of a sweep.
type Sample struct {
	Degree   int
	Sin, Cos float64 // rotator output
	RefSin   float64 // math.Sin
	RefCos   float64 // math.Cos
}

// Report summarizes a sweep.
type Report struct {
	Samples []Sample

	// RMSE of the absolute errors.
	RMSESin, RMSECos float64

	// RMSE of the error ratios |got-want|/|want| in percent, over samples
	// whose reference is non-zero.
	RatioRMSESin, RatioRMSECos float64

	// Largest absolute error seen.
	MaxErrSin, MaxErrCos float64

	// Bound is the worst-case residual angle after the rotator's steps.
	Bound float64
}

// Sweep rotates every whole degree in [from, to) and compares the results
// against the math package. Angles are evaluated in parallel on pool when it
// is non-nil; the report does not depend on the pool.
func Sweep(r *Rotator, from, to int, pool *workerpool.Pool) Report {
	n := max(to-from, 0)
	rep := Report{
		Samples: make([]Sample, n),
		Bound:   residualBound(r.Iterations()),
	}
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			deg := from + i
			rad := float64(deg) * math.Pi / 180
			s, c := r.SinCos(rad)
			rep.Samples[i] = Sample{
				Degree: deg,
				Sin:    s,
				Cos:    c,
				RefSin: math.Sin(rad),
				RefCos: math.Cos(rad),
			}
		}
	})

	var sumSin, sumCos, ratioSin, ratioCos float64
	var nRatioSin, nRatioCos int
	for _, smp := range rep.Samples {
		es := math.Abs(smp.Sin - smp.RefSin)
		ec := math.Abs(smp.Cos - smp.RefCos)
		sumSin += es * es
		sumCos += ec * ec
		rep.MaxErrSin = max(rep.MaxErrSin, es)
		rep.MaxErrCos = max(rep.MaxErrCos, ec)
		if ref := math.Abs(smp.RefSin); ref > 1e-12 {
			p := es / ref * 100
			ratioSin += p * p
			nRatioSin++
		}
		if ref := math.Abs(smp.RefCos); ref > 1e-12 {
			p := ec / ref * 100
			ratioCos += p * p
			nRatioCos++
		}
	}
	if n > 0 {
		rep.RMSESin = math.Sqrt(sumSin / float64(n))
		rep.RMSECos = math.Sqrt(sumCos / float64(n))
	}
	if nRatioSin > 0 {
		rep.RatioRMSESin = math.Sqrt(ratioSin / float64(nRatioSin))
	}
	if nRatioCos > 0 {
		rep.RatioRMSECos = math.Sqrt(ratioCos / float64(nRatioCos))
	}

	fxp.Logger().Debug("cordic: sweep done",
		"from", from, "to", to,
		"iterations", r.Iterations(),
		"rmse_sin", rep.RMSESin, "rmse_cos", rep.RMSECos)
	return rep
}
