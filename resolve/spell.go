// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

// This file implements the "did you mean" lookup used by
// undefined-name diagnostics.

import (
	"strings"
	"unicode"
)

// suggest returns the candidate nearest to name under the Levenshtein
// metric, or "" if none is close enough. Case and underscores are
// ignored when comparing.
func suggest(name string, candidates []string) string {
	folded := fold(name)

	best := ""
	bestDist := (len(folded) + 1) / 2 // tolerate up to 50% typos
	for _, c := range candidates {
		if d := editDistance(folded, fold(c), bestDist); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// editDistance returns the Levenshtein distance between x and y using
// a single-row table. Once every entry of a row exceeds max it may
// return early with an approximation greater than max.
func editDistance(x, y string, max int) int {
	if len(x) > len(y) {
		x, y = y, x
	}
	for len(x) > 0 && x[0] == y[0] {
		x, y = x[1:], y[1:]
	}
	if x == "" {
		return len(y)
	}

	row := make([]int, len(y)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(x); i++ {
		row[0] = i
		best := i
		diag := i - 1
		for j := 1; j <= len(y); j++ {
			d := diag
			if x[i-1] != y[j-1] {
				d++
			}
			if r := row[j-1] + 1; r < d {
				d = r
			}
			if r := row[j] + 1; r < d {
				d = r
			}
			diag, row[j] = row[j], d
			if d < best {
				best = d
			}
		}
		if best > max {
			return best
		}
	}
	return row[len(y)]
}
