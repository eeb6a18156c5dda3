/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package renpy compiles a parsed batch of situations into a Ren'Py script:
// character declarations, one label per situation, one label per answer
// outcome, and a single terminal ending label. The correct path chains
// through every situation to the ending; a wrong answer jumps back to the
// same situation so the player retries it.
package renpy

import (
	"fmt"
	"strings"

	"vnforge/internal/story"
)

const indent = "    "

// Options controls script emission.
type Options struct {
	// ClosingLine is shown at the terminal ending label.
	ClosingLine string
	// IncludeScenes emits a "scene bg story{i}" statement at each situation
	// label, matching the background art bundled per situation.
	IncludeScenes bool
}

// DefaultOptions matches the shipped runtime template.
func DefaultOptions() Options {
	return Options{ClosingLine: "The End.", IncludeScenes: false}
}

// SituationLabel names the label that plays situation i.
func SituationLabel(i int) string { return fmt.Sprintf("story%d", i) }

// OutcomeLabel names the label reached by choosing answer j in situation i.
func OutcomeLabel(i, j int) string { return fmt.Sprintf("s%da%d", i, j) }

// EndingLabel is the single terminal label of every compiled script.
const EndingLabel = "ending"

// Compile translates the fully parsed situations, the speaker registry and
// the transitions into a complete script. Every situation must be parsed and
// a transition must exist for every consecutive pair.
func Compile(situations []*story.Situation, registry *story.SpeakerRegistry, transitions []*story.Transition, opts Options) (string, error) {
	if len(situations) == 0 {
		return "", fmt.Errorf("no situations to compile")
	}
	for i, s := range situations {
		if !s.Parsed() {
			return "", fmt.Errorf("situation %d is not parsed", i)
		}
	}
	byFrom := make(map[int]*story.Transition, len(transitions))
	for _, t := range transitions {
		byFrom[t.From] = t
	}
	for i := 0; i < len(situations)-1; i++ {
		if _, ok := byFrom[i]; !ok {
			return "", fmt.Errorf("missing transition %d->%d", i, i+1)
		}
	}

	var b strings.Builder

	// Character declarations come first; label bodies reference the
	// identifiers, so the registry order must already be final.
	for _, sp := range registry.All() {
		fmt.Fprintf(&b, "define %s = Character(%s)\n", sp.ID, quote(sp.Name))
	}
	if registry.Len() > 0 {
		b.WriteString("\n")
	}

	b.WriteString("label start:\n")
	fmt.Fprintf(&b, "%sjump %s\n", indent, SituationLabel(0))

	for i, s := range situations {
		last := i == len(situations)-1

		fmt.Fprintf(&b, "\nlabel %s:\n", SituationLabel(i))
		if opts.IncludeScenes {
			fmt.Fprintf(&b, "%sscene bg %s\n", indent, SituationLabel(i))
		}
		intro, err := s.Introduction()
		if err != nil {
			return "", fmt.Errorf("situation %d: %w", i, err)
		}
		writeDialogue(&b, intro, indent)

		b.WriteString(indent + "menu:\n")
		fmt.Fprintf(&b, "%s%s%s\n", indent, indent, quote(s.Question()))
		for j, answer := range s.Answers() {
			fmt.Fprintf(&b, "%s%s%s:\n", indent, indent, quote(answer))
			fmt.Fprintf(&b, "%s%s%sjump %s\n", indent, indent, indent, OutcomeLabel(i, j))
		}

		for j := range s.Answers() {
			fmt.Fprintf(&b, "\nlabel %s:\n", OutcomeLabel(i, j))
			ending, err := s.Ending(j)
			if err != nil {
				return "", fmt.Errorf("situation %d answer %d: %w", i, j, err)
			}
			writeDialogue(&b, ending, indent)

			switch {
			case j != s.CorrectAnswerIndex():
				fmt.Fprintf(&b, "%sjump %s\n", indent, SituationLabel(i))
			case last:
				fmt.Fprintf(&b, "%sjump %s\n", indent, EndingLabel)
			default:
				for _, line := range byFrom[i].Lines {
					fmt.Fprintf(&b, "%s%s\n", indent, quote(line))
				}
				fmt.Fprintf(&b, "%sjump %s\n", indent, SituationLabel(i+1))
			}
		}
	}

	fmt.Fprintf(&b, "\nlabel %s:\n", EndingLabel)
	fmt.Fprintf(&b, "%s%s\n", indent, quote(opts.ClosingLine))
	fmt.Fprintf(&b, "%sreturn\n", indent)

	return b.String(), nil
}

func writeDialogue(b *strings.Builder, lines []story.DialogueLine, pad string) {
	for _, line := range lines {
		if line.Speaker != nil {
			fmt.Fprintf(b, "%s%s %s\n", pad, line.Speaker.ID, quote(line.Text))
		} else {
			fmt.Fprintf(b, "%s%s\n", pad, quote(line.Text))
		}
	}
}

// quote renders s as a Ren'Py string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
