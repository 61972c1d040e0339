// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"time"
)

// slotFrames returns the values a slot strip shows while spinning: rounds
// full passes over items, then up to and including items[target]. The last
// frame is always the picked value.
func slotFrames(items []string, target, rounds int) []string {
	if len(items) == 0 || target < 0 || target >= len(items) {
		return nil
	}
	n := rounds*len(items) + target + 1
	frames := make([]string, n)
	for i := range frames {
		frames[i] = items[i%len(items)]
	}
	return frames
}

// frameDelay eases out: fast at the start, slow on the last frames.
func frameDelay(i, n int) time.Duration {
	progress := float64(i) / float64(max(n-1, 1))
	return time.Duration(15+progress*progress*185) * time.Millisecond
}

func playStrip(out io.Writer, frames []string) {
	width := 0
	for _, f := range frames {
		width = max(width, len(f))
	}
	for i, f := range frames {
		fmt.Fprintf(out, "\r  %-*s", width, f)
		time.Sleep(frameDelay(i, len(frames)))
	}
	fmt.Fprint(out, "\r")
}
