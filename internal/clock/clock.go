// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clock reads nanosecond timestamps for timing loops.
//
// [Monotonic] never runs backward. It reads CLOCK_MONOTONIC where
// golang.org/x/sys/unix provides it and the Go runtime's monotonic
// clock elsewhere. [Wall] reads the time of day and is the fallback
// for callers that want it. [Default] returns Monotonic.
package clock

// NanosPerSecond is the number of nanoseconds in a second.
const NanosPerSecond = 1_000_000_000

const nanosPerMicro = 1000

// A Clock returns the current time in nanoseconds
// since an arbitrary, fixed epoch.
type Clock interface {
	Now() (uint64, error)
}

// Func adapts an ordinary function to a Clock.
type Func func() (uint64, error)

func (f Func) Now() (uint64, error) { return f() }

// Default returns the clock to time loops with.
func Default() Clock {
	return Monotonic
}

// An UnavailableError reports that the operating system
// could not produce a clock reading.
type UnavailableError struct {
	What string // "monotonic clock" or "current time"
	Err  error
}

func (e *UnavailableError) Error() string {
	return "Unable to retrieve " + e.What + ": " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error { return e.Err }
