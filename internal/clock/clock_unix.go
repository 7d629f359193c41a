// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package clock

import "golang.org/x/sys/unix"

// Wall reads the time of day with gettimeofday.
var Wall Clock = Func(wall)

func wall() (uint64, error) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return 0, &UnavailableError{What: "current time", Err: err}
	}
	return uint64(tv.Sec)*NanosPerSecond + uint64(tv.Usec)*nanosPerMicro, nil
}
