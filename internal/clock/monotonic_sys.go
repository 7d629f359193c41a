// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || openbsd || dragonfly || solaris

package clock

import "golang.org/x/sys/unix"

// Monotonic reads CLOCK_MONOTONIC.
var Monotonic Clock = Func(monotonic)

func monotonic() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, &UnavailableError{What: "monotonic clock", Err: err}
	}
	return uint64(ts.Sec)*NanosPerSecond + uint64(ts.Nsec), nil
}
