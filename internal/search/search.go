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
	"fmt"
	"time"

	"github.com/op/go-logging"

	"github.com/sparrowchess/engine/internal/movegen"
	myLogging "github.com/sparrowchess/engine/internal/logging"
	"github.com/sparrowchess/engine/internal/position"
	"github.com/sparrowchess/engine/internal/transpositiontable"
	. "github.com/sparrowchess/engine/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("search")
}

// Result is the outcome of a completed iterative-deepening search: the
// move to play and the principal variation supporting it.
type Result struct {
	BestMove Move
	Pv       []Move
	Value    Value
	Depth    int
}

// Reporter receives one call per completed iteration, in the shape of a
// UCI "info" line. An iteration aborted by the stop flag is neither
// reported nor adopted, with one exception: the depth-1 iteration is
// always adopted and reported, even when the stop flag was set during
// it (or before the search began), so that a move is available.
type Reporter func(depth, selDepth int, value Value, nodes uint64, elapsed time.Duration, pv []Move)

// Search drives iterative deepening over p using tt as its transposition
// table, per limits and params, calling report after each completed
// depth. stop is polled cooperatively; the caller may set it from
// another goroutine to abort early, though the UCI protocol surfaced by
// this engine never issues such a signal itself.
func Search(p *position.Position, tt *transpositiontable.TtTable, limits *Limits, params Params, stop *bool, report Reporter) Result {
	stats := &Statistics{}
	start := time.Now()

	r := &run{
		tt:     tt,
		params: params,
		stats:  stats,
		stop:   stop,
	}
	if budget := limits.TimeBudget(p.NextPlayer() == White); budget > 0 {
		r.hasDeadline = true
		r.deadline = start.Add(budget)
	}

	maxDepth := params.MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	if !movegen.HasLegalMove(p) {
		log.Warning("search called on a position with no legal moves")
		return Result{BestMove: MoveNone}
	}
	if p.HalfMoveClock() >= 100 || p.IsRepetition(2) {
		log.Warning("search called on a position already drawn by the fifty-move rule or repetition")
		return Result{BestMove: MoveNone}
	}

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		stats.reset()
		r.rootDepth = depth

		bestMove, value, pv := r.searchRoot(p, depth)
		if *stop && depth > 1 {
			break
		}

		result = Result{BestMove: bestMove, Pv: pv, Value: value, Depth: depth}
		stats.BestMoveTime = time.Since(start)
		if report != nil {
			report(depth, stats.SelDepth, value, stats.Nodes, stats.BestMoveTime, pv)
		}

		if *stop {
			break
		}
		if IsMateScore(value) {
			break
		}
	}
	return result
}

// searchRoot runs one full-width negamax pass at depth and reconstructs
// the principal variation from the transposition table's next-position
// keys, per spec §4.5/§4.6.
func (r *run) searchRoot(p *position.Position, depth int) (Move, Value, []Move) {
	if p.HasCheck() {
		depth++
	}

	moves := movegen.GenerateMoves(p)
	key := p.ZobristKey()
	_, _, ttMove := r.tt.Probe(key, depth, -ValueInf, ValueInf)
	keys := orderingKeys(p, moves, ttMove)
	moves.SortByKey(keys)

	alpha := -ValueInf
	beta := ValueInf
	bestMove := MoveNone
	bestNextKey := Key(0)
	legalMoves := 0

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !p.MakeMove(m) {
			continue
		}
		legalMoves++
		nextKey := p.ZobristKey()
		score := -r.alphaBeta(p, -beta, -alpha, depth-1)
		p.UndoMove()

		if *r.stop && legalMoves > 1 {
			break
		}
		if score > alpha {
			alpha = score
			bestMove = m
			bestNextKey = nextKey
		}
	}

	if legalMoves == 0 {
		if p.HasCheck() {
			return MoveNone, -(MateValue - Value(p.LinePly())), nil
		}
		return MoveNone, ValueDraw, nil
	}

	r.tt.Put(key, bestNextKey, bestMove, int8(depth), alpha, transpositiontable.Exact)

	return bestMove, alpha, r.reconstructPv(key, bestMove, depth)
}

// reconstructPv walks the transposition table's next-position-key chain
// starting from the root entry stored under rootKey, per spec §4.5: each
// TT entry's NextPositionKey names the entry holding the reply to its own
// best move, so the chain can be followed without a separate PV table.
func (r *run) reconstructPv(rootKey Key, first Move, depth int) []Move {
	pv := make([]Move, 0, depth)
	pv = append(pv, first)

	entry := r.tt.GetEntry(rootKey)
	if entry == nil {
		return pv
	}
	next := entry.NextPositionKey()
	for i := 1; i < depth; i++ {
		entry := r.tt.GetEntry(next)
		if entry == nil || entry.Move() == MoveNone {
			break
		}
		pv = append(pv, entry.Move())
		next = entry.NextPositionKey()
	}
	return pv
}

// FormatScore renders a Value as a UCI score token: "cp N" or "mate N".
func FormatScore(v Value) string {
	if IsMateScore(v) {
		return fmt.Sprintf("mate %d", MateIn(v))
	}
	return fmt.Sprintf("cp %d", v)
}
