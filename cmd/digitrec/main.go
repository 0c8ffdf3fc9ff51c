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

// Command digitrec recognizes 7×7 digit bitmaps with the k-nearest-neighbor
// classifier.
//
// Usage:
//
//	digitrec -bitmap 0x1c2040810204             # classify one bitmap
//	digitrec -words 0x40810204,0x1c2             # same, as transport words
//	digitrec -image seven.png                    # classify an image file
//	digitrec -train training.dat -test test.dat  # error rate over labeled samples
//	digitrec -dump > training.dat                # write the active training set
//
// Without -train, a synthetic training set rendered from the Go fonts is used.
// Training and test files hold one "<label> <bitmap-hex>" pair per line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-fxkernels/fxp"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/digitrec"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/glyph"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/workerpool"
)

var (
	trainFile = flag.String("train", "", "Training set file (default: synthetic Go-font set)")
	variants  = flag.Int("variants", 30, "Renderings per digit for the synthetic training set")
	k         = flag.Int("k", digitrec.DefaultK, "Number of nearest neighbors")
	bitmap    = flag.String("bitmap", "", "Bitmap to classify, as hex")
	words     = flag.String("words", "", "Bitmap to classify, as two comma-separated 32-bit words, low first")
	imageFile = flag.String("image", "", "Image file to classify (PNG, GIF, JPEG or BMP)")
	testFile  = flag.String("test", "", "Labeled samples to evaluate")
	dump      = flag.Bool("dump", false, "Write the training set to stdout")
	workers   = flag.Int("workers", 0, "Worker goroutines (default: GOMAXPROCS)")
	verbose   = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *verbose {
		fxp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	set, err := loadTrainingSet()
	if err != nil {
		return err
	}
	if *dump {
		_, err := set.WriteTo(os.Stdout)
		return err
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	c, err := digitrec.New(set, digitrec.WithK(*k), digitrec.WithPool(pool))
	if err != nil {
		return err
	}

	switch {
	case *testFile != "":
		return evaluate(c, *testFile)
	case *bitmap != "":
		q, err := digitrec.ParseDigit(*bitmap)
		if err != nil {
			return err
		}
		return classify(c, q)
	case *words != "":
		src, err := parseWords(*words)
		if err != nil {
			return err
		}
		q, err := digitrec.DecodeWords(src)
		if err != nil {
			return err
		}
		return classify(c, q)
	case *imageFile != "":
		f, err := os.Open(*imageFile)
		if err != nil {
			return err
		}
		defer f.Close()
		q, err := glyph.Decode(f)
		if err != nil {
			return err
		}
		return classify(c, q)
	default:
		flag.Usage()
		return fmt.Errorf("one of -bitmap, -words, -image, -test or -dump is required")
	}
}

func loadTrainingSet() (*digitrec.TrainingSet, error) {
	if *trainFile == "" {
		return glyph.TrainingSet(*variants)
	}
	f, err := os.Open(*trainFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return digitrec.ParseTrainingSet(f)
}

func parseWords(s string) ([]uint32, error) {
	var out []uint32
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("parse word %q: %v: %w", part, err, fxp.ErrInvalidInput)
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

func classify(c *digitrec.Classifier, q digitrec.Digit) error {
	t, err := c.ClassifyTally(q)
	if err != nil {
		return err
	}
	fmt.Println(q)
	fmt.Printf("digit %d (neighbors %v, scores %v)\n", t.Digit, t.Counts, t.Scores)
	return nil
}

func evaluate(c *digitrec.Classifier, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	samples, err := digitrec.ParseSamples(f)
	if err != nil {
		return err
	}
	acc, err := digitrec.Evaluate(c, samples)
	if err != nil {
		return err
	}
	fmt.Printf("Overall Error Rate: %.4f (%d/%d)\n", acc.ErrorRate(), acc.Errors, acc.Total)
	for want, row := range acc.Confusion {
		fmt.Printf("%d: %v\n", want, row)
	}
	return nil
}
