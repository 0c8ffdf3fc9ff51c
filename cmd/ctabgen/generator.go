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

package main

import (
	"bytes"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-fxkernels/fxp"
)

// prec is the working precision in bits for table computation.
const prec = 256

const fxpImportPath = "github.com/ajroetker/go-fxkernels/fxp"

// Generator emits a Go source file holding the CORDIC constants.
type Generator struct {
	Entries    int
	Package    string
	OutputFile string
	Gain       string
	Command    string // recorded in the generated header
}

// Run computes the constants and writes the output file.
func (g *Generator) Run() error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	if g.OutputFile == "-" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// Source returns the formatted Go source.
func (g *Generator) Source() ([]byte, error) {
	gain, _, err := big.ParseFloat(g.Gain, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("parse gain %q: %w", g.Gain, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", g.Command)
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "import %q\n\n", fxpImportPath)
	fmt.Fprintf(&buf, "// gain is the CORDIC gain compensation K = %s in Q%d.%d.\n", g.Gain, fxp.IntBits, fxp.FracBits)
	fmt.Fprintf(&buf, "const gain fxp.Fixed = %#x\n\n", quantize(gain))
	fmt.Fprintf(&buf, "// atanTable[i] is atan(2^-i) in Q%d.%d, rounded to nearest.\n", fxp.IntBits, fxp.FracBits)
	fmt.Fprintf(&buf, "var atanTable = [%d]fxp.Fixed{\n", g.Entries)
	for i := range g.Entries {
		v := atan(pow2(-i))
		fmt.Fprintf(&buf, "\t%#x, // atan(2^-%d) = %s\n", quantize(v), i, v.Text('g', 20))
	}
	fmt.Fprintf(&buf, "}\n")

	name := filepath.Base(g.OutputFile)
	if g.OutputFile == "-" {
		name = "ctab.gen.go"
	}
	out, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format table: %w", err)
	}
	return out, nil
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(prec)
}

func pow2(exp int) *big.Float {
	return newFloat().SetMantExp(big.NewFloat(1), exp)
}

// atan computes arctan(x) for 0 <= x <= 1. The argument is halved four times
// with atan(x) = 2·atan(x / (1 + sqrt(1 + x²))) before summing the Taylor
// series, which then converges in a few dozen terms.
func atan(x *big.Float) *big.Float {
	one := big.NewFloat(1)
	x = newFloat().Set(x)

	const halvings = 4
	for range halvings {
		r := newFloat().Mul(x, x)
		r.Add(r, one)
		r.Sqrt(r)
		r.Add(r, one)
		x.Quo(x, r)
	}

	eps := pow2(-prec)
	x2 := newFloat().Mul(x, x)
	term := newFloat().Set(x)
	sum := newFloat()
	for k := int64(1); ; k += 2 {
		t := newFloat().Quo(term, newFloat().SetInt64(k))
		if newFloat().Abs(t).Cmp(eps) < 0 {
			break
		}
		if (k/2)%2 == 0 {
			sum.Add(sum, t)
		} else {
			sum.Sub(sum, t)
		}
		term.Mul(term, x2)
	}
	return sum.SetMantExp(sum, halvings)
}

// quantize rounds a non-negative v to the nearest multiple of 2^-FracBits
// and returns the raw fixed-point bits.
func quantize(v *big.Float) int64 {
	t := newFloat().SetMantExp(v, fxp.FracBits)
	t.Add(t, big.NewFloat(0.5))
	i, _ := t.Int64() // truncates toward zero, i.e. floors for t >= 0
	return i
}
