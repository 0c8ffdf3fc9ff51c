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

// Command cordic rotates angles with the fixed-point CORDIC kernel.
//
// Usage:
//
//	cordic -deg 30                 # sine and cosine of one angle
//	cordic -rad 0.785398 -iter 12  # with fewer pseudo-rotations
//	cordic -sweep 90               # RMSE over 1°..89°, like the hardware test bench
//
// Single-angle output includes the transport words, low word first.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/ajroetker/go-fxkernels/fxp"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/cordic"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/workerpool"
)

var (
	degrees    = flag.Float64("deg", math.NaN(), "Angle in degrees")
	radians    = flag.Float64("rad", math.NaN(), "Angle in radians")
	iterations = flag.Int("iter", cordic.DefaultIterations, "Number of pseudo-rotations")
	sweep      = flag.Int("sweep", 0, "Sweep whole degrees in [1, N) and report errors")
	workers    = flag.Int("workers", 0, "Sweep workers (default: GOMAXPROCS)")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *verbose {
		fxp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r, err := cordic.NewRotator(*iterations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *sweep > 0:
		pool := workerpool.New(*workers)
		defer pool.Close()
		printReport(cordic.Sweep(r, 1, *sweep, pool))
	case !math.IsNaN(*degrees):
		rotate(r, *degrees*math.Pi/180)
	case !math.IsNaN(*radians):
		rotate(r, *radians)
	default:
		fmt.Fprintf(os.Stderr, "Error: one of -deg, -rad or -sweep is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
}

func rotate(r *cordic.Rotator, rad float64) {
	theta := fxp.FromFloat(rad)
	if math.Abs(rad) > r.ConvergenceLimit() {
		fmt.Fprintf(os.Stderr, "Warning: |%v| rad exceeds the convergence limit %.4f; expect reduced accuracy\n",
			rad, r.ConvergenceLimit())
	}
	words, err := r.RotateWords(fxp.AppendWords(nil, theta))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	c := fxp.FromWords(words[0], words[1])
	s := fxp.FromWords(words[2], words[3])

	lo, hi := theta.Words()
	fmt.Printf("theta = %-22v words %08x %08x\n", theta, lo, hi)
	fmt.Printf("cos   = %-22v words %08x %08x  (math.Cos %v)\n", c, words[0], words[1], math.Cos(rad))
	fmt.Printf("sin   = %-22v words %08x %08x  (math.Sin %v)\n", s, words[2], words[3], math.Sin(rad))
}

func printReport(rep cordic.Report) {
	fmt.Println("#------------------------------------------------")
	fmt.Printf("Overall_Error_Sin = %g\n", rep.RatioRMSESin)
	fmt.Printf("Overall_Error_Cos = %g\n", rep.RatioRMSECos)
	fmt.Println("#------------------------------------------------")
	fmt.Printf("RMSE sin = %.3g, cos = %.3g\n", rep.RMSESin, rep.RMSECos)
	fmt.Printf("Max  sin = %.3g, cos = %.3g (residual bound %.3g)\n", rep.MaxErrSin, rep.MaxErrCos, rep.Bound)
}
