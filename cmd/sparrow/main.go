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

package main

import (
	"flag"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	golog "github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/sparrowchess/engine/internal/config"
	myLogging "github.com/sparrowchess/engine/internal/logging"
	"github.com/sparrowchess/engine/internal/uci"
	"github.com/sparrowchess/engine/internal/version"
)

var out = message.NewPrinter(language.German)

var logLevels = map[string]golog.Level{
	"critical": golog.CRITICAL,
	"error":    golog.ERROR,
	"warning":  golog.WARNING,
	"notice":   golog.NOTICE,
	"info":     golog.INFO,
	"debug":    golog.DEBUG,
}

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level (critical|error|warning|notice|info|debug)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to cpu.pprof in the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := logLevels[*logLvl]; found {
		myLogging.SetLevel(lvl)
	}

	h := uci.NewHandler()
	h.Loop()
}

func printVersionInfo() {
	out.Println(version.String())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
