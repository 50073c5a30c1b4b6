// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package growbuf provides a function for calling an API that fills a
// caller-supplied buffer of fixed size, retrying with a larger buffer until
// the result fits.
package growbuf

import (
	"context"
	"fmt"

	"zombiezen.com/go/log"
)

// A Strategy can be called repeatedly to obtain increasing buffer sizes.
type Strategy interface {
	// Next returns the buffer size to try after size. It must be larger
	// than size.
	Next(size int) int
}

// Linear grows a buffer by a fixed number of elements per attempt.
type Linear int

// Next returns size + l.
func (l Linear) Next(size int) int {
	return size + int(l)
}

// Doubling grows a buffer by doubling its size on every attempt.
var Doubling Strategy = doubling{}

type doubling struct{}

func (doubling) Next(size int) int {
	if size <= 0 {
		return 1
	}
	return size * 2
}

// Fill calls fill with a buffer of the initial size, then with buffers of
// increasing size chosen by the strategy, until truncated reports false for
// the count fill returned. It returns the buffer and count from the last call.
// A count of zero is never treated as truncated. Fill stops at the first error
// from fill and returns it unmodified.
//
// Fill panics if initial is not positive or if the strategy does not grow
// the buffer.
func Fill[E any](ctx context.Context, initial int, strategy Strategy, fill func(buf []E) (int, error), truncated func(n, size int) bool) ([]E, int, error) {
	if initial <= 0 {
		panic(fmt.Sprintf("growbuf.Fill: initial size %d", initial))
	}
	size := initial
	for {
		buf := make([]E, size)
		n, err := fill(buf)
		if err != nil {
			return buf, n, err
		}
		if n == 0 || !truncated(n, size) {
			return buf, n, nil
		}
		next := strategy.Next(size)
		if next <= size {
			panic(fmt.Sprintf("growbuf.Fill: strategy did not grow buffer (%d -> %d)", size, next))
		}
		log.Debugf(ctx, "Result truncated at %d elements; retrying with %d", size, next)
		size = next
	}
}
