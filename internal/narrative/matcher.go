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

// LineMatcher tests body lines against one speaker-table snippet. The snippet
// is tokenized into words; each word is matched literally and consecutive
// words may be separated by any characters, non-greedily. That tolerates the
// punctuation and small paraphrases the generator introduces between the
// table and the body text.
type LineMatcher struct {
	speaker string
	snippet string
	re      *regexp.Regexp
}

// NewLineMatcher builds a matcher from a table row. It returns ok=false for
// snippets with no word content, which can never match anything.
func NewLineMatcher(speaker, snippet string) (*LineMatcher, bool) {
	words := strings.Fields(snippet)
	if len(words) == 0 {
		return nil, false
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	re, err := regexp.Compile("(?i)" + strings.Join(escaped, ".*?"))
	if err != nil {
		return nil, false
	}
	return &LineMatcher{speaker: speaker, snippet: snippet, re: re}, true
}

// Speaker returns the speaker name this matcher attributes to.
func (m *LineMatcher) Speaker() string { return m.speaker }

// Matches reports whether the line contains the snippet's words in order.
func (m *LineMatcher) Matches(line string) bool { return m.re.MatchString(line) }
