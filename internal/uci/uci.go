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

// Package uci implements a line-oriented protocol shell around the
// search and position packages: uci, isready, ucinewgame, position, go,
// display, perft, quit.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sparrowchess/engine/internal/config"
	myLogging "github.com/sparrowchess/engine/internal/logging"
	"github.com/sparrowchess/engine/internal/movegen"
	"github.com/sparrowchess/engine/internal/position"
	"github.com/sparrowchess/engine/internal/search"
	"github.com/sparrowchess/engine/internal/transpositiontable"
	. "github.com/sparrowchess/engine/internal/types"
	"github.com/sparrowchess/engine/internal/util"
	"github.com/sparrowchess/engine/internal/version"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

func init() {
	log = myLogging.GetLog("uci")
}

// Handler reads UCI commands from InIo and writes responses to OutIo. It
// owns the current position and transposition table across commands.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *position.Position
	tt     *transpositiontable.TtTable
	params search.Params
	stop   bool
}

// NewHandler creates a Handler wired to stdin/stdout, with a fresh
// starting position and a transposition table sized per config.
func NewHandler() *Handler {
	config.Setup()
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.NewPosition(),
		tt:     transpositiontable.NewTtTable(config.Settings.TT.SizeInMB),
		params: search.Params{
			MaxDepth:                 config.Settings.Search.MaxDepth,
			QuiescenceDepthThreshold: config.Settings.Search.QuiescenceDepthThreshold,
			NodesBetweenTimeChecks:   config.Settings.Search.NodesBetweenTimeChecks,
		},
	}
}

// Loop reads and handles commands until "quit" is received or input ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line and returns whatever was written to
// stdout for it - useful for tests without wiring a real pipe.
func (h *Handler) Command(cmd string) string {
	tmp := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buf.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	log.Debugf("received: %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewPosition()
		h.tt.Clear()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "display":
		h.send(h.pos.String())
	case "perft":
		h.perftCommand(tokens)
	default:
		msg := out.Sprintf("Unknown command: %s", cmd)
		h.send(out.Sprintf("info string %s", msg))
		log.Warning(msg)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + version.Name + " " + version.Version)
	h.send("id author " + version.Author)
	h.send("uciok")
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.malformed("position", tokens)
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			sb.WriteString(tokens[i])
			sb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(sb.String())
	default:
		h.malformed("position", tokens)
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		msg := out.Sprintf("Command 'position' malformed. Invalid fen '%s': %v", fen, err)
		h.send(out.Sprintf("info string %s", msg))
		log.Warning(msg)
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := movegen.MoveFromUci(h.pos, tokens[i])
			if !m.IsValid() {
				msg := out.Sprintf("Command 'position' malformed. Invalid move '%s'", tokens[i])
				h.send(out.Sprintf("info string %s", msg))
				log.Warning(msg)
				return
			}
			if !h.pos.MakeMove(m) {
				msg := out.Sprintf("Command 'position' malformed. Illegal move '%s'", tokens[i])
				h.send(out.Sprintf("info string %s", msg))
				log.Warning(msg)
				return
			}
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits, err := h.readSearchLimits(tokens)
	if err {
		return
	}
	h.stop = false
	start := time.Now()
	result := search.Search(h.pos, h.tt, limits, h.params, &h.stop, func(depth, selDepth int, value Value, nodes uint64, elapsed time.Duration, pv []Move) {
		h.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
			depth, selDepth, search.FormatScore(value), nodes, util.Nps(nodes, time.Since(start)), elapsed.Milliseconds(), pvString(pv)))
	})
	if result.BestMove == MoveNone {
		h.send("bestmove 0000")
		return
	}
	h.send("bestmove " + result.BestMove.StringUci())
}

func pvString(pv []Move) string {
	var sb strings.Builder
	for i, m := range pv {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}

func (h *Handler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Warningf("cannot perft on depth '%s'", tokens[1])
		} else {
			depth = d
		}
	}
	start := time.Now()
	nodes := movegen.Perft(h.pos, depth)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info depth %d nodes %d nps %d time %d", depth, nodes, util.Nps(nodes, elapsed), elapsed.Milliseconds()))
}

func (h *Handler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		if tokens[i] != "infinite" && i+1 >= len(tokens) {
			h.malformed("go", tokens)
			return nil, true
		}
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "depth":
			i++
			v, perr := strconv.Atoi(tokens[i])
			if perr != nil {
				h.malformedValue("go", "depth", tokens[i])
				return nil, true
			}
			limits.Depth = v
			i++
		case "nodes":
			i++
			v, perr := strconv.ParseUint(tokens[i], 10, 64)
			if perr != nil {
				h.malformedValue("go", "nodes", tokens[i])
				return nil, true
			}
			limits.Nodes = v
			i++
		case "movetime":
			i++
			v, perr := strconv.ParseInt(tokens[i], 10, 64)
			if perr != nil {
				h.malformedValue("go", "movetime", tokens[i])
				return nil, true
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			v, perr := strconv.ParseInt(tokens[i], 10, 64)
			if perr != nil {
				h.malformedValue("go", "wtime", tokens[i])
				return nil, true
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			v, perr := strconv.ParseInt(tokens[i], 10, 64)
			if perr != nil {
				h.malformedValue("go", "btime", tokens[i])
				return nil, true
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			v, perr := strconv.ParseInt(tokens[i], 10, 64)
			if perr != nil {
				h.malformedValue("go", "winc", tokens[i])
				return nil, true
			}
			limits.WhiteInc = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, perr := strconv.ParseInt(tokens[i], 10, 64)
			if perr != nil {
				h.malformedValue("go", "binc", tokens[i])
				return nil, true
			}
			limits.BlackInc = time.Duration(v) * time.Millisecond
			i++
		default:
			h.malformed("go", tokens)
			return nil, true
		}
	}
	if !(limits.Infinite || limits.Depth > 0 || limits.Nodes > 0 || limits.TimeControl) {
		limits.Depth = h.params.MaxDepth
	}
	return limits, false
}

func (h *Handler) malformed(cmd string, tokens []string) {
	msg := out.Sprintf("Command '%s' malformed: %s", cmd, strings.Join(tokens, " "))
	h.send(out.Sprintf("info string %s", msg))
	log.Warning(msg)
}

func (h *Handler) malformedValue(cmd, sub, value string) {
	msg := out.Sprintf("Command '%s' malformed. %s value not a number: %s", cmd, sub, value)
	h.send(out.Sprintf("info string %s", msg))
	log.Warning(msg)
}

func (h *Handler) send(s string) {
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
