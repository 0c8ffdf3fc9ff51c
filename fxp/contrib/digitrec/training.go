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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ajroetker/go-fxkernels/fxp"
)

// TrainingSet holds the labeled instances of all ten classes. It is not
// modified after construction and may be shared across classifiers and
// goroutines.
type TrainingSet struct {
	classes [NumClasses][]Digit
}

// NewTrainingSet copies classes, where classes[j] holds the instances of
// digit j. Every class must have at least one instance.
func NewTrainingSet(classes [][]Digit) (*TrainingSet, error) {
	if len(classes) != NumClasses {
		return nil, fmt.Errorf("digitrec: got %d classes, want %d: %w", len(classes), NumClasses, fxp.ErrDegenerateModel)
	}
	ts := &TrainingSet{}
	for j, inst := range classes {
		if len(inst) == 0 {
			return nil, fmt.Errorf("digitrec: class %d has no instances: %w", j, fxp.ErrDegenerateModel)
		}
		for i, d := range inst {
			if !d.Valid() {
				return nil, fmt.Errorf("digitrec: class %d instance %d: bitmap %#x has bits above bit %d: %w",
					j, i, uint64(d), Bits-1, fxp.ErrInvalidInput)
			}
		}
		ts.classes[j] = append([]Digit(nil), inst...)
	}
	return ts, nil
}

// Class returns the instances of class j. The slice must not be modified.
func (ts *TrainingSet) Class(j int) []Digit {
	return ts.classes[j]
}

// Len returns the total number of instances.
func (ts *TrainingSet) Len() int {
	n := 0
	for _, inst := range ts.classes {
		n += len(inst)
	}
	return n
}

// MinClassSize returns the number of instances in the smallest class.
func (ts *TrainingSet) MinClassSize() int {
	n := len(ts.classes[0])
	for _, inst := range ts.classes[1:] {
		n = min(n, len(inst))
	}
	return n
}

// Sample is a bitmap with its known digit.
type Sample struct {
	Label int
	Digit Digit
}

// ParseSamples reads labeled bitmaps, one per line as "<label> <hex>".
// Blank lines and lines starting with '#' are skipped.
func ParseSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("digitrec: line %d: want \"<label> <bitmap>\", got %q: %w", lineNo, line, fxp.ErrInvalidInput)
		}
		label, err := strconv.Atoi(fields[0])
		if err != nil || label < 0 || label >= NumClasses {
			return nil, fmt.Errorf("digitrec: line %d: bad label %q: %w", lineNo, fields[0], fxp.ErrInvalidInput)
		}
		d, err := parseHex(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		samples = append(samples, Sample{Label: label, Digit: d})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("digitrec: read samples: %w", err)
	}
	return samples, nil
}

// ParseTrainingSet reads a training set in the ParseSamples format.
func ParseTrainingSet(r io.Reader) (*TrainingSet, error) {
	samples, err := ParseSamples(r)
	if err != nil {
		return nil, err
	}
	ts, err := FromSamples(samples)
	if err != nil {
		return nil, err
	}
	fxp.Logger().Debug("digitrec: training set loaded", "instances", ts.Len(), "min_class", ts.MinClassSize())
	return ts, nil
}

// FromSamples groups labeled samples into a training set.
func FromSamples(samples []Sample) (*TrainingSet, error) {
	classes := make([][]Digit, NumClasses)
	for _, s := range samples {
		if s.Label < 0 || s.Label >= NumClasses {
			return nil, fmt.Errorf("digitrec: label %d out of range: %w", s.Label, fxp.ErrInvalidInput)
		}
		classes[s.Label] = append(classes[s.Label], s.Digit)
	}
	return NewTrainingSet(classes)
}

// WriteTo writes the set in the format read by ParseTrainingSet, class by
// class.
func (ts *TrainingSet) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for j, inst := range ts.classes {
		for _, d := range inst {
			m, err := fmt.Fprintf(bw, "%d %s\n", j, d.Hex())
			n += int64(m)
			if err != nil {
				return n, err
			}
		}
	}
	return n, bw.Flush()
}
