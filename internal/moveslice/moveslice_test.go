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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sparrowchess/engine/internal/types"
)

func TestPushBackAndAt(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(NewMove(SqE2, SqE4))
	ms.PushBack(NewMove(SqD2, SqD4))
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, NewMove(SqE2, SqE4), ms.At(0))
}

func TestSortByKeyDescending(t *testing.T) {
	ms := NewMoveSlice(3)
	ms.PushBack(NewMove(SqA2, SqA3))
	ms.PushBack(NewMove(SqB2, SqB4))
	ms.PushBack(NewMove(SqC2, SqC4))
	keys := []int{10, 100000, 50}
	ms.SortByKey(keys)
	assert.Equal(t, NewMove(SqB2, SqB4), ms.At(0))
	assert.Equal(t, NewMove(SqC2, SqC4), ms.At(1))
	assert.Equal(t, NewMove(SqA2, SqA3), ms.At(2))
}

func TestClearRetainsCapacity(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(NewMove(SqE2, SqE4))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}
