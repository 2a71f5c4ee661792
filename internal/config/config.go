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

// Package config holds globally available configuration, set from
// defaults and then overridden by an optional config file (whose path
// the command line may choose via ConfFile).
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/sparrowchess/engine/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless overridden on the command line.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	TT     ttConfiguration
}

type searchConfiguration struct {
	MaxDepth                 int
	QuiescenceDepthThreshold int
	NodesBetweenTimeChecks   uint64
}

type ttConfiguration struct {
	SizeInMB int
}

// Setup reads the configuration file (if present) and fills in defaults
// for anything the file doesn't set. Idempotent - a second call is a
// no-op.
func Setup() {
	if initialized {
		return
	}
	Settings.Search = searchConfiguration{
		MaxDepth:                 MaxDepth,
		QuiescenceDepthThreshold: 4,
		NodesBetweenTimeChecks:   3000,
	}
	Settings.TT = ttConfiguration{SizeInMB: 16}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	initialized = true
}

// MaxDepth is the hard ceiling on iterative deepening in the absence of
// any other termination condition.
const MaxDepth = 64
