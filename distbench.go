// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Distbench reports how long a single function call takes.
//
// Usage:
//
//	distbench
//
// Distbench calls the function target (in target.go) 10,000,000 times
// in a loop, reading the monotonic clock before and after,
// and prints the elapsed time and the average time per call:
//
//	% distbench
//	distbench: 10000000 iterations took 0.021573 seconds (~ 2 nanoseconds per call)
//	%
//
// The program name printed is the one it was invoked as.
// Distbench takes no flags and ignores its arguments.
// To measure a different function, edit target.go and rebuild.
//
// If the clock cannot be read, distbench prints a message beginning
// with “ERROR:” to standard error and exits with status 1.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"rsc.io/tmp/distbench/internal/clock"
)

// iterations is the number of calls measure makes.
const iterations = 10_000_000

// newClock is replaced in tests.
var newClock = clock.Default

func main() {
	log.SetFlags(0)
	log.SetPrefix("ERROR: ")
	if err := run(newClock(), target, os.Stdout, os.Args[0]); err != nil {
		log.Fatal(err)
	}
}

func run(c clock.Clock, f func() int, w io.Writer, prog string) error {
	r, err := measure(c, f)
	if err != nil {
		return err
	}
	fmt.Fprint(w, r.summary(prog))
	return nil
}

// sink receives every result so the calls cannot be optimized away.
var sink int

// A result holds the clock readings taken around the loop.
type result struct {
	iterations int
	start      uint64
	end        uint64
}

// measure reads c, calls f iterations times, and reads c again.
// Only the loop falls between the two readings.
func measure(c clock.Clock, f func() int) (result, error) {
	start, err := c.Now()
	if err != nil {
		return result{}, err
	}
	for i := 0; i < iterations; i++ {
		sink = f()
	}
	end, err := c.Now()
	if err != nil {
		return result{}, err
	}
	return result{iterations: iterations, start: start, end: end}, nil
}

// duration returns the elapsed nanoseconds.
// A clock that stepped backward yields 0.
func (r result) duration() uint64 {
	if r.end < r.start {
		return 0
	}
	return r.end - r.start
}

func (r result) seconds() float64 {
	return float64(r.duration()) / clock.NanosPerSecond
}

// nanosPerCall returns the average nanoseconds per call, truncated.
func (r result) nanosPerCall() uint64 {
	if r.iterations <= 0 {
		return 0
	}
	return r.duration() / uint64(r.iterations)
}

func (r result) summary(prog string) string {
	return fmt.Sprintf("%s: %d iterations took %f seconds (~ %d nanoseconds per call)\n",
		prog, r.iterations, r.seconds(), r.nanosPerCall())
}
