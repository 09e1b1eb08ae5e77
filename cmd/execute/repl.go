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

package execute

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/emojilang/emojilang/cmd"
	"github.com/emojilang/emojilang/interpreter"
	"github.com/emojilang/emojilang/runtime"
)

// replSession holds the state of an interactive session between inputs
type replSession struct {
	repl               *runtime.REPL
	options            Options
	lineNumber         int
	lineIsContinuation bool
	code               string
}

func newREPLSession(options Options) *replSession {
	config := runtime.Config{
		Parser: options.Parser,
		Stdout: options.Stdout,
	}

	if options.Trace {
		config.Tracer = interpreter.Tracer{
			TracingEnabled: true,
			OnRecordTrace:  traceWriter(options.Stderr, options.UseColor),
		}
	}

	return &replSession{
		repl:       runtime.NewREPL(config),
		options:    options,
		lineNumber: 1,
	}
}

func RunREPL(options Options) {
	session := newREPLSession(options)

	session.printWelcome()

	changeLivePrefix := func() (string, bool) {
		return session.prefix(), true
	}

	prompt.New(
		session.execute,
		session.suggest,
		prompt.OptionLivePrefix(changeLivePrefix),
		prompt.OptionTitle("emojilang"),
	).Run()
}

func (s *replSession) prefix() string {
	separator := '>'
	if s.lineIsContinuation {
		separator = '.'
	}

	return fmt.Sprintf("%d%c ", s.lineNumber, separator)
}

func (s *replSession) execute(line string) {
	defer func() {
		s.lineNumber++
	}()

	if s.code == "" && strings.HasPrefix(line, ".") {
		s.handleCommand(strings.TrimSpace(line))
		return
	}

	// Prefix the code with empty lines,
	// so that error messages match the current line number

	if s.code == "" {
		s.code = strings.Repeat("\n", s.lineNumber-1)
	}

	s.code += line + "\n"

	code := []byte(s.code)

	inputIsComplete, err := s.repl.Accept(code)
	if !inputIsComplete {
		s.lineIsContinuation = true
		return
	}

	s.lineIsContinuation = false
	s.code = ""

	if err != nil {
		cmd.PrintError(s.options.Stderr, err, "", code, s.options.UseColor)
	}
}

func (s *replSession) suggest(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if len(word) == 0 {
		return nil
	}

	suggestions := s.repl.Suggestions()
	suggests := make([]prompt.Suggest, 0, len(suggestions))

	for _, suggestion := range suggestions {
		suggests = append(suggests, prompt.Suggest{
			Text:        suggestion.Name,
			Description: suggestion.Description,
		})
	}

	return prompt.FilterHasPrefix(suggests, word, false)
}

const replHelpMessage = `
Enter statements to execute them, or an expression to print its value.
Statements spanning multiple lines are executed once they are complete.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the interpreter
.help     Print this help message
.vars     Print the declared variables

Press ^C to abort current input, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func (s *replSession) handleCommand(command string) {
	stdout := s.options.Stdout

	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		writeLine(stdout, replHelpMessage)
	case ".vars":
		s.printVariables(stdout)
	default:
		writeLine(
			stdout,
			colorizeError(
				fmt.Sprintf("Unknown command. %s", replAssistanceMessage),
				s.options.UseColor,
			),
		)
	}
}

func (s *replSession) printVariables(writer io.Writer) {
	environment := s.repl.Environment()

	names := environment.Names()
	if len(names) == 0 {
		writeLine(writer, colorizeHint("no variables declared", s.options.UseColor))
		return
	}

	for _, name := range names {
		value, _ := environment.Get(name)
		writeLine(
			writer,
			fmt.Sprintf(
				"%s: %s = %s",
				name,
				value.StaticType(),
				colorizeHint(value.String(), s.options.UseColor),
			),
		)
	}
}

func (s *replSession) printWelcome() {
	writeLine(s.options.Stdout, fmt.Sprintf("Welcome to emojilang!\n%s\n", replAssistanceMessage))
}
