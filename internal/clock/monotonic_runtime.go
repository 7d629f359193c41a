// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || openbsd || dragonfly || solaris)

package clock

import "time"

// base is the epoch for Monotonic.
// time.Since uses the monotonic reading carried by base.
var base = time.Now()

// Monotonic reads the Go runtime's monotonic clock,
// counting from package initialization.
var Monotonic Clock = Func(func() (uint64, error) {
	return uint64(time.Since(base)), nil
})
