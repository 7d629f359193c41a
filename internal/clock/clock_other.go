// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package clock

import "time"

// Wall reads the time of day.
var Wall Clock = Func(wall)

func wall() (uint64, error) {
	t := time.Now()
	return uint64(t.Unix())*NanosPerSecond + uint64(t.Nanosecond()), nil
}
