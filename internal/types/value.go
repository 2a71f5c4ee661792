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

package types

// Value is a centipawn evaluation or search score.
type Value int32

const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 20000
	ValueNA    Value = -ValueInf - 1
	MateValue  Value = 10000
	MaxDepth         = 128
)

// IsMateScore reports whether v represents a forced mate (for either
// side) within the engine's mate-score window.
func IsMateScore(v Value) bool {
	d := v
	if d < 0 {
		d = -d
	}
	return MateValue-d < 300
}

// MateIn returns the number of full moves to deliver (v>0) or receive
// (v<0) mate, signed to match the side whose score v is.
func MateIn(v Value) int {
	d := MateValue - v
	if v < 0 {
		d = MateValue + v
	}
	n := (int(d) + 1) / 2
	if v < 0 {
		return -n
	}
	return n
}
