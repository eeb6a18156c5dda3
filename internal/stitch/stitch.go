/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package stitch normalizes generated transition text into narrator lines
// bridging the correct ending of one situation to the introduction of the
// next. No speaker attribution happens here; transitions are always plain
// narration. The full normalized body is used, not just the last line.
package stitch

import (
	"errors"
	"strings"

	"vnforge/internal/story"
)

// ErrEmptyTransition means the generated text normalized to nothing. The
// caller discards the batch and regenerates, same as a parse failure.
var ErrEmptyTransition = errors.New("transition text is empty after normalization")

// Stitch normalizes raw generated text into the transition between situation
// from and situation from+1.
func Stitch(from int, raw string) (*story.Transition, error) {
	lines := Normalize(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyTransition
	}
	return &story.Transition{From: from, To: from + 1, Lines: lines}, nil
}

// Normalize strips blank lines and splits each remaining line at sentence
// boundaries so every sentence lands on its own line. One sentence per line
// paces the narration when the script plays back.
func Normalize(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, splitSentences(line)...)
	}
	return out
}

// splitSentences breaks a line after each sentence-ending period. The period
// stays attached to its sentence. Periods inside abbreviations like "Mr." are
// not special-cased; the generator's prose does not use them by contract.
func splitSentences(line string) []string {
	var out []string
	rest := line
	for {
		idx := strings.Index(rest, ". ")
		if idx < 0 {
			break
		}
		sentence := strings.TrimSpace(rest[:idx+1])
		if sentence != "" && sentence != "." {
			out = append(out, sentence)
		}
		rest = strings.TrimSpace(rest[idx+1:])
	}
	if rest != "" && rest != "." {
		out = append(out, rest)
	}
	return out
}
