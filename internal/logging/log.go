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

// Package logging wraps github.com/op/go-logging with the engine's
// standard stdout backend and format string, one named logger per
// calling package.
package logging

import (
	"os"

	golog "github.com/op/go-logging"
)

var level = golog.INFO

// SetLevel sets the log level of the shared stdout backend. All loggers
// share that backend, so the level applies to loggers already created
// and to every one created later.
func SetLevel(l golog.Level) {
	level = l
	golog.SetLevel(l, "")
}

// GetLog returns a logger named after the calling package, backed by
// stdout with the engine's standard timestamp/location/level format.
func GetLog(name string) *golog.Logger {
	log := golog.MustGetLogger(name)
	backend := golog.NewLogBackend(os.Stdout, "", 0)
	format := golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
	)
	backendFormatter := golog.NewBackendFormatter(backend, format)
	backendLeveled := golog.AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(level, "")
	golog.SetBackend(backendLeveled)
	return log
}
