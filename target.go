// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// target is the function under measurement.
// Change its body to time something else.
//
//go:noinline
func target() int {
	return 42
}
