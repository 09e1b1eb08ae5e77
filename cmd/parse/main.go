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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/emojilang/emojilang/cmd"
	"github.com/emojilang/emojilang/parser"
)

var jsonFlag = flag.Bool("json", false, "print the syntax tree as JSON")
var yamlFlag = flag.Bool("yaml", false, "print the syntax tree as YAML")
var colorFlag = flag.String("color", cmd.ColorAuto, "colorize errors: auto, always, or never")

func main() {
	flag.Parse()
	args := flag.Args()

	useColor, err := cmd.UseColor(*colorFlag, os.Stderr)
	if err != nil {
		cmd.ExitWithError(err.Error(), false)
	}

	format := cmd.ASTFormatSource
	switch {
	case *jsonFlag && *yamlFlag:
		cmd.ExitWithError("only one of -json and -yaml may be given", useColor)
	case *jsonFlag:
		format = cmd.ASTFormatJSON
	case *yamlFlag:
		format = cmd.ASTFormatYAML
	}

	if len(args) == 0 {
		code, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			panic(err)
		}

		parse(code, "", format, useColor)
		return
	}

	for _, location := range args {
		if len(args) > 1 {
			_, err := fmt.Printf("%s:\n", location)
			if err != nil {
				panic(err)
			}
		}

		code := cmd.ReadCode(location, useColor)
		parse(code, location, format, useColor)
	}
}

func parse(code []byte, location string, format cmd.ASTFormat, useColor bool) {
	program, must := cmd.PrepareProgram(code, location, parser.Config{}, useColor)

	rendered, err := cmd.RenderAST(program, format)
	must(err)

	_, err = os.Stdout.Write(rendered)
	must(err)
}
