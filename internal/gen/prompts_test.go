/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package gen

import (
	"strings"
	"testing"

	"vnforge/internal/story"
)

func TestSituationPromptPinsLayout(t *testing.T) {
	s, err := story.NewSituation("Which way?", 1, "left", "right", "up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := SituationPrompt(s)

	for _, want := range []string{
		"Which way?",
		"## Introduction",
		"## Ending with answer 0",
		"## Ending with answer 1",
		"## Ending with answer 2",
		"| Speaker | Dialogue |",
		"Answer 1 is the correct one.",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "## Ending with answer 3") {
		t.Fatalf("prompt asks for too many endings:\n%s", prompt)
	}
}

func TestTransitionPromptCarriesBothScenes(t *testing.T) {
	prev := []story.DialogueLine{story.Narration("The door closes behind you.")}
	next := []story.DialogueLine{story.Narration("A new corridor stretches ahead.")}
	prompt := TransitionPrompt(prev, next)
	if !strings.Contains(prompt, "The door closes behind you.") {
		t.Fatalf("previous scene missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "A new corridor stretches ahead.") {
		t.Fatalf("next scene missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "connective passage") {
		t.Fatalf("unexpected prompt wording:\n%s", prompt)
	}
}

func TestScenePromptStableAcrossRetries(t *testing.T) {
	s, err := story.NewSituation("Which way?", 0, "left", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := ScenePrompt(s)
	if !strings.Contains(first, "Which way?") {
		t.Fatalf("scene prompt missing question: %s", first)
	}

	// Attaching narrative must not change the prompt; retried batches rely on
	// identical prompts to hit the artist cache.
	intro := []story.DialogueLine{story.Narration("i")}
	endings := [][]story.DialogueLine{{story.Narration("a")}, {story.Narration("b")}}
	if err := s.SetNarrative(intro, endings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ScenePrompt(s) != first {
		t.Fatalf("scene prompt changed after parse")
	}
}
