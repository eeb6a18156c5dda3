/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package narrative

import (
	"regexp"
	"strings"
)

// headingRegex tolerates varying heading depth and surrounding whitespace but
// requires the heading text itself to match exactly (case-insensitive).
var headingRegex = regexp.MustCompile(`^\s*#{1,6}\s*(.+?)\s*$`)

// cursor walks the generated text line by line. It makes the section
// boundaries explicit: seek to a heading, then collect content until the next
// heading or end of text.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(text string) *cursor {
	return &cursor{lines: strings.Split(text, "\n")}
}

// headingText returns the heading title of a line, or "" if the line is not a
// heading.
func headingText(line string) string {
	m := headingRegex.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// seekHeading advances the cursor just past the first heading whose title
// equals want (case-insensitive). It reports whether the heading was found;
// on failure the cursor is left where it was.
func (c *cursor) seekHeading(want string) bool {
	for i := c.pos; i < len(c.lines); i++ {
		if h := headingText(c.lines[i]); h != "" && strings.EqualFold(h, want) {
			c.pos = i + 1
			return true
		}
	}
	return false
}

// collectSection gathers the non-blank content lines from the cursor up to
// the next heading or the end of the text, leaving the cursor on the
// boundary. Table-syntax lines belong to the speaker table, not the section.
func (c *cursor) collectSection() []string {
	var out []string
	for ; c.pos < len(c.lines); c.pos++ {
		line := c.lines[c.pos]
		if headingText(line) != "" {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isTableLine(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
