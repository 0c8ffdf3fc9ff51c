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
	"github.com/ajroetker/go-fxkernels/fxp/contrib/workerpool"
)

// Classifier recognizes digits against a fixed training set.
type Classifier struct {
	set  *TrainingSet
	k    int
	pool *workerpool.Pool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithK sets the number of nearest neighbors. It must be in [1, Sentinel].
func WithK(k int) Option {
	return func(c *Classifier) { c.k = k }
}

// WithPool runs the per-class scans of Classify, and the queries of
// ClassifyBatch, on pool.
func WithPool(pool *workerpool.Pool) Option {
	return func(c *Classifier) { c.pool = pool }
}

// New returns a classifier over set.
func New(set *TrainingSet, opts ...Option) (*Classifier, error) {
	if set == nil {
		return nil, fmt.Errorf("digitrec: nil training set: %w", fxp.ErrDegenerateModel)
	}
	c := &Classifier{set: set, k: DefaultK}
	for _, opt := range opts {
		opt(c)
	}
	if c.k < 1 || c.k > Sentinel {
		return nil, fmt.Errorf("digitrec: k=%d outside [1, %d]: %w", c.k, Sentinel, fxp.ErrInvalidInput)
	}
	fxp.Logger().Debug("digitrec: classifier ready",
		"k", c.k, "instances", set.Len(), "workers", c.pool.NumWorkers())
	return c, nil
}

// K returns the number of nearest neighbors voted on.
func (c *Classifier) K() int {
	return c.k
}

// Classify returns the recognized digit, 0 through 9.
func (c *Classifier) Classify(q Digit) (int, error) {
	t, err := c.ClassifyTally(q)
	if err != nil {
		return 0, err
	}
	return t.Digit, nil
}

// ClassifyTally returns the full vote for q.
func (c *Classifier) ClassifyTally(q Digit) (Tally, error) {
	if !q.Valid() {
		return Tally{}, fmt.Errorf("digitrec: query %#x has bits above bit %d: %w", uint64(q), Bits-1, fxp.ErrInvalidInput)
	}
	return c.tally(q, c.pool), nil
}

// ClassifyWords takes the query as two 32-bit words, low word first, and
// returns the digit as a 4-bit value.
func (c *Classifier) ClassifyWords(src []uint32) (uint8, error) {
	q, err := DecodeWords(src)
	if err != nil {
		return 0, err
	}
	d, err := c.Classify(q)
	return uint8(d), err
}

// ClassifyBatch classifies each query independently, spreading queries over
// the pool when one is configured. It fails on the first invalid query.
func (c *Classifier) ClassifyBatch(qs []Digit) ([]int, error) {
	for i, q := range qs {
		if !q.Valid() {
			return nil, fmt.Errorf("digitrec: query %d: bitmap %#x has bits above bit %d: %w", i, uint64(q), Bits-1, fxp.ErrInvalidInput)
		}
	}

	out := make([]int, len(qs))
	// Queries are the parallel axis here; each query scans its classes on
	// the worker that owns it, so the pool is never re-entered.
	c.pool.ParallelFor(len(qs), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = c.tally(qs[i], nil).Digit
		}
	})
	fxp.Logger().Debug("digitrec: batch classified", "queries", len(qs))
	return out, nil
}

// tally scans every class for q and votes. The k-best arrays are per call.
func (c *Classifier) tally(q Digit, pool *workerpool.Pool) Tally {
	var sets [NumClasses]KBest
	for j := range sets {
		sets[j] = NewKBest(c.k)
	}
	pool.ParallelForAtomic(NumClasses, func(j int) {
		kb := sets[j]
		for _, t := range c.set.classes[j] {
			UpdateKNN(q, t, kb)
		}
	})
	return Vote(&sets)
}
