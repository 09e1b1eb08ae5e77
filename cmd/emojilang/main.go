/*
 * Emojilang - A glyph-based toy programming language
 *
 * Copyright The Emojilang Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emojilang/emojilang/cmd"
	"github.com/emojilang/emojilang/cmd/execute"
	"github.com/emojilang/emojilang/parser"
)

var astFlag = flag.String("ast", string(cmd.ASTFormatYAML), "render the syntax tree before running: yaml, json, source, or none")
var traceFlag = flag.Bool("trace", false, "print execution traces to stderr")
var colorFlag = flag.String("color", cmd.ColorAuto, "colorize output: auto, always, or never")
var strictBlocksFlag = flag.Bool("strict-blocks", false, "restrict if, else and while bodies to the strict block grammar")

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	useColor, err := cmd.UseColor(*colorFlag, os.Stderr)
	if err != nil {
		cmd.ExitWithError(err.Error(), false)
	}

	astFormat, err := cmd.ParseASTFormat(*astFlag)
	if err != nil {
		cmd.ExitWithError(err.Error(), useColor)
	}

	options := execute.Options{
		ASTFormat: astFormat,
		Trace:     *traceFlag,
		UseColor:  useColor,
		Parser: parser.Config{
			StrictBlocks: *strictBlocksFlag,
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		execute.RunREPL(options)
	case 1:
		execute.Execute(args[0], options)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
