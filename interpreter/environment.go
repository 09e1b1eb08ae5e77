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

package interpreter

import (
	"maps"
	"slices"
)

// Environment is the single, flat mapping of variable names to values.
// There are no nested scopes: blocks and loop bodies share the environment.
type Environment struct {
	variables map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{
		variables: map[string]Value{},
	}
}

func (e *Environment) Get(name string) (Value, bool) {
	value, ok := e.variables[name]
	return value, ok
}

// Set binds the name to the value, replacing any previous binding.
func (e *Environment) Set(name string, value Value) {
	e.variables[name] = value
}

func (e *Environment) Has(name string) bool {
	_, ok := e.variables[name]
	return ok
}

// Names returns the names of all variables, sorted.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.variables))
}
