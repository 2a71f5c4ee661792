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

import (
	"time"

	"github.com/sparrowchess/engine/internal/movegen"
	"github.com/sparrowchess/engine/internal/moveslice"
	"github.com/sparrowchess/engine/internal/position"
	"github.com/sparrowchess/engine/internal/transpositiontable"
	. "github.com/sparrowchess/engine/internal/types"
)

// ttBestMoveBonus is added to the ordering key of a move that matches
// the transposition table's stored best move, placing it first
// regardless of its MVV-LVA score.
const ttBestMoveBonus = 100_000

// run carries everything one call to the root driver needs, threaded
// through every recursive alphaBeta/quiescence call instead of living on
// a shared struct - the search itself has no state beyond this.
type run struct {
	tt          *transpositiontable.TtTable
	params      Params
	stats       *Statistics
	stop        *bool
	deadline    time.Time
	hasDeadline bool
	rootDepth   int
}

func (r *run) pollTime() {
	if r.stats.Nodes%r.params.NodesBetweenTimeChecks != 0 {
		return
	}
	if r.hasDeadline && time.Now().After(r.deadline) {
		*r.stop = true
	}
}

// alphaBeta implements spec.md §4.6: fail-hard negamax with check
// extension, repetition/50-move draw detection, TT probing, and
// MVV-LVA-plus-TT-move ordering.
func (r *run) alphaBeta(p *position.Position, alpha, beta Value, depth int) Value {
	r.stats.Nodes++
	r.stats.trackSelDepth(p.LinePly())
	r.pollTime()
	if *r.stop {
		return 0
	}

	if p.HalfMoveClock() >= 100 || p.IsRepetition(2) {
		return ValueDraw
	}

	inCheck := p.HasCheck()
	if inCheck {
		depth++
	}

	if depth <= 0 {
		if r.rootDepth >= r.params.QuiescenceDepthThreshold {
			return r.quiescence(p, alpha, beta)
		}
		return p.Eval()
	}

	key := p.ZobristKey()
	cutoff, hasCutoff, ttMove := r.tt.Probe(key, depth, alpha, beta)
	if hasCutoff {
		return cutoff
	}

	moves := movegen.GenerateMoves(p)
	keys := orderingKeys(p, moves, ttMove)
	moves.SortByKey(keys)

	legalMoves := 0
	bestMove := MoveNone
	bestNextKey := Key(0)
	bestScore := alpha
	raisedAlpha := false

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !p.MakeMove(m) {
			continue
		}
		legalMoves++
		nextKey := p.ZobristKey()
		score := -r.alphaBeta(p, -beta, -bestScore, depth-1)
		p.UndoMove()

		if *r.stop {
			return 0
		}
		if score >= beta {
			r.tt.Put(key, nextKey, m, int8(depth), beta, transpositiontable.LowerBound)
			return beta
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
			bestNextKey = nextKey
			raisedAlpha = true
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -(MateValue - Value(p.LinePly()))
		}
		return ValueDraw
	}

	kind := transpositiontable.UpperBound
	if raisedAlpha {
		kind = transpositiontable.Exact
	}
	r.tt.Put(key, bestNextKey, bestMove, int8(depth), bestScore, kind)
	return bestScore
}

// quiescence implements spec.md §4.7: stand-pat plus a capture-only
// search, with OrderingOnly TT entries seeding future ordering.
func (r *run) quiescence(p *position.Position, alpha, beta Value) Value {
	r.stats.Nodes++
	r.stats.trackSelDepth(p.LinePly())
	r.pollTime()
	if *r.stop {
		return 0
	}

	if p.LinePly() >= MaxDepth {
		return p.Eval()
	}

	standPat := p.Eval()
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	key := p.ZobristKey()
	_, _, ttMove := r.tt.Probe(key, 0, alpha, beta)

	captures := movegen.GenerateCaptures(p)
	keys := orderingKeys(p, captures, ttMove)
	captures.SortByKey(keys)

	bestMove := MoveNone
	bestNextKey := Key(0)
	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		if !p.MakeMove(m) {
			continue
		}
		nextKey := p.ZobristKey()
		score := -r.quiescence(p, -beta, -alpha)
		p.UndoMove()

		if *r.stop {
			return 0
		}
		if score >= beta {
			r.tt.Put(key, nextKey, m, 0, beta, transpositiontable.OrderingOnly)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			bestNextKey = nextKey
		}
	}
	if bestMove != MoveNone {
		r.tt.Put(key, bestNextKey, bestMove, 0, alpha, transpositiontable.OrderingOnly)
	}
	return alpha
}

// orderingKeys computes the descending sort key for each move in ml per
// spec §4.6 step 6: MVV-LVA (victim value minus attacker value, 0 for
// quiet moves) plus a large bonus for the transposition table's move.
func orderingKeys(p *position.Position, ml *moveslice.MoveSlice, ttMove Move) []int {
	keys := make([]int, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		keys[i] = mvvLvaScore(p, m)
		if m == ttMove {
			keys[i] += ttBestMoveBonus
		}
	}
	return keys
}

func mvvLvaScore(p *position.Position, m Move) int {
	if m.MoveType() == EnPassant {
		// pawn takes pawn: victim minus attacker is zero
		return 0
	}
	victim := p.GetPiece(m.To())
	if victim == PieceNone {
		return 0
	}
	attacker := p.GetPiece(m.From())
	return int(victim.TypeOf().ValueOf()) - int(attacker.TypeOf().ValueOf())
}
