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

// Command ctabgen generates the CORDIC arctangent table and gain constant in
// fxp.Fixed format.
//
// Usage:
//
//	ctabgen -n 32 -pkg cordic -output ctab.gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/ctabgen -n 32 -pkg cordic -output ctab.gen.go
//
// The values are computed with math/big at a precision well above the 61
// fractional bits of fxp.Fixed, then rounded to nearest, so the output does
// not depend on the platform's float64 math library.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	numEntries = flag.Int("n", 32, "Number of table entries, atan(2^-i) for i in [0, n)")
	packageOut = flag.String("pkg", "cordic", "Output package name")
	outputFile = flag.String("output", "ctab.gen.go", "Output file; '-' writes to stdout")
	gainText   = flag.String("gain", "0.6072529350088812561694", "Gain compensation constant K")
)

func main() {
	flag.Parse()

	if *numEntries <= 0 || *numEntries > 62 {
		fmt.Fprintf(os.Stderr, "Error: -n must be in [1, 62], got %d\n", *numEntries)
		os.Exit(1)
	}

	gen := &Generator{
		Entries:    *numEntries,
		Package:    *packageOut,
		OutputFile: *outputFile,
		Gain:       *gainText,
		Command:    "ctabgen " + strings.Join(os.Args[1:], " "),
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "-" {
		fmt.Printf("Successfully generated %d table entries in %s\n", *numEntries, *outputFile)
	}
}
