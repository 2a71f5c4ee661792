/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

// Params are the tunable constants of the search algorithm. Kept as a
// struct rather than package-level constants so tests can exercise
// different values (e.g. a lower QuiescenceDepthThreshold) without
// touching global state.
type Params struct {
	// MaxDepth is the hard ceiling iterative deepening will not exceed.
	MaxDepth int
	// QuiescenceDepthThreshold is the minimum configured root depth
	// required before depth-0 nodes tail-call quiescence rather than a
	// flat eval() - an open question from the source the spec leaves as
	// a tunable, not a fixed invariant.
	QuiescenceDepthThreshold int
	// NodesBetweenTimeChecks is how often (in visited nodes) the search
	// polls the wall clock.
	NodesBetweenTimeChecks uint64
}

// DefaultParams mirrors the engine's config.toml defaults.
func DefaultParams() Params {
	return Params{
		MaxDepth:                 64,
		QuiescenceDepthThreshold: 4,
		NodesBetweenTimeChecks:   3000,
	}
}
