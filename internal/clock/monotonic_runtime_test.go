// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || openbsd || dragonfly || solaris)

package clock

import (
	"testing"
	"time"
)

func TestMonotonicCountsFromBase(t *testing.T) {
	before := uint64(time.Since(base))
	n, err := Monotonic.Now()
	if err != nil {
		t.Fatal(err)
	}
	after := uint64(time.Since(base))
	if n < before || n > after {
		t.Errorf("Monotonic.Now() = %d, want between %d and %d", n, before, after)
	}
}
