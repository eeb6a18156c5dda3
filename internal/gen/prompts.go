/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package gen

import (
	"fmt"
	"strings"

	"vnforge/internal/story"
)

// The prompts pin the generator to the exact layout the narrative parser
// expects: the heading grammar, one ending per answer, and the speaker table.

// SituationPrompt asks for the full narrative of one situation.
func SituationPrompt(s *story.Situation) string {
	var b strings.Builder
	b.WriteString("Write a short interactive scene for a visual novel.\n\n")
	fmt.Fprintf(&b, "The scene poses this question to the player: %s\n", s.Question())
	b.WriteString("The possible answers are:\n")
	for i, a := range s.Answers() {
		fmt.Fprintf(&b, "%d. %s\n", i, a)
	}
	fmt.Fprintf(&b, "Answer %d is the correct one.\n\n", s.CorrectAnswerIndex())
	b.WriteString("Format your output exactly like this, with these exact headings:\n\n")
	b.WriteString("## Introduction\n")
	b.WriteString("A few lines setting up the scene, ending with the question being posed.\n\n")
	for i := range s.Answers() {
		fmt.Fprintf(&b, "## Ending with answer %d\n", i)
		b.WriteString("A few lines describing what happens after this answer.\n\n")
	}
	b.WriteString("Then add a table attributing each spoken line to its speaker:\n\n")
	b.WriteString("| Speaker | Dialogue |\n")
	b.WriteString("|---|---|\n")
	b.WriteString("| name | the spoken line |\n\n")
	b.WriteString("Only lines spoken by characters go in the table. Use plain prose for narration.\n")
	return b.String()
}

// TransitionPrompt asks for connective narration between two situations.
func TransitionPrompt(prev, next []story.DialogueLine) string {
	var b strings.Builder
	b.WriteString("Write one short connective passage of narration, two to three sentences.\n")
	b.WriteString("It bridges the end of this scene:\n\n")
	for _, line := range prev {
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n...to the start of this scene:\n\n")
	for _, line := range next {
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	b.WriteString("\nOutput only the passage itself, no headings and no commentary.\n")
	return b.String()
}

// ScenePrompt describes the background art for a situation. It depends only
// on the question, so retried batches produce identical prompts and hit the
// artist's cache.
func ScenePrompt(s *story.Situation) string {
	return fmt.Sprintf(
		"Background illustration for a visual novel scene about: %s. No characters, no text, painterly style, 16:9.",
		s.Question())
}
