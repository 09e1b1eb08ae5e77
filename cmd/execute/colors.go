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
	"github.com/logrusorgru/aurora/v4"
)

func colorize(str string, color aurora.Color, useColor bool) string {
	if !useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

func colorizeHeader(header string, useColor bool) string {
	return colorize(header, aurora.CyanFg|aurora.BoldFm, useColor)
}

func colorizeTrace(name string, useColor bool) string {
	return colorize(name, aurora.MagentaFg, useColor)
}

func colorizeError(message string, useColor bool) string {
	return colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm, useColor)
}

func colorizeHint(message string, useColor bool) string {
	return colorize(message, aurora.YellowFg|aurora.BrightFg, useColor)
}
