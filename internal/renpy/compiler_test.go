/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package renpy

import (
	"strings"
	"testing"

	"vnforge/internal/story"
)

func parsedSituation(t *testing.T, question string, correct int, answers ...string) *story.Situation {
	t.Helper()
	s, err := story.NewSituation(question, correct, answers...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	intro := []story.DialogueLine{story.Narration("intro for " + question)}
	endings := make([][]story.DialogueLine, len(answers))
	for j := range answers {
		endings[j] = []story.DialogueLine{story.Narration("ending " + answers[j])}
	}
	if err := s.SetNarrative(intro, endings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func compileTwo(t *testing.T, opts Options) string {
	t.Helper()
	s0 := parsedSituation(t, "Which way?", 0, "left", "right")
	s1 := parsedSituation(t, "Open the box?", 1, "no", "yes")
	registry := story.NewSpeakerRegistry()
	registry.Register("Guide")
	transitions := []*story.Transition{{From: 0, To: 1, Lines: []string{"You press on.", "A box appears."}}}

	script, err := Compile([]*story.Situation{s0, s1}, registry, transitions, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return script
}

func TestCompileLabelStructure(t *testing.T) {
	script := compileTwo(t, DefaultOptions())

	// 2 situation labels, 4 outcome labels, plus start and ending.
	for _, label := range []string{
		"label start:", "label story0:", "label story1:",
		"label s0a0:", "label s0a1:", "label s1a0:", "label s1a1:",
		"label ending:",
	} {
		if !strings.Contains(script, label+"\n") && !strings.Contains(script, label) {
			t.Fatalf("missing %q in script:\n%s", label, script)
		}
	}
	if got := strings.Count(script, "label "); got != 8 {
		t.Fatalf("expected 8 labels, got %d", got)
	}
}

func TestCompileCharacterDefines(t *testing.T) {
	script := compileTwo(t, DefaultOptions())
	if !strings.HasPrefix(script, `define c0 = Character("Guide")`) {
		t.Fatalf("expected character define first, got:\n%s", script)
	}
}

func TestCompileJumpTargets(t *testing.T) {
	script := compileTwo(t, DefaultOptions())

	// Wrong answer in situation 0 replays situation 0.
	wrong := section(t, script, "label s0a1:")
	if !strings.Contains(wrong, "jump story0") {
		t.Fatalf("wrong answer must jump back:\n%s", wrong)
	}

	// Correct answer in situation 0 plays the transition then advances.
	right := section(t, script, "label s0a0:")
	if !strings.Contains(right, `"You press on."`) || !strings.Contains(right, `"A box appears."`) {
		t.Fatalf("transition lines missing:\n%s", right)
	}
	if !strings.Contains(right, "jump story1") {
		t.Fatalf("correct answer must advance:\n%s", right)
	}

	// Correct answer in the last situation reaches the ending.
	final := section(t, script, "label s1a1:")
	if !strings.Contains(final, "jump ending") {
		t.Fatalf("last correct answer must jump to ending:\n%s", final)
	}
	if strings.Contains(final, "You press on") {
		t.Fatalf("no transition after the last situation:\n%s", final)
	}
}

func TestCompileMenu(t *testing.T) {
	script := compileTwo(t, DefaultOptions())
	menu := section(t, script, "label story0:")
	if !strings.Contains(menu, "menu:") {
		t.Fatalf("missing menu:\n%s", menu)
	}
	if !strings.Contains(menu, `"Which way?"`) {
		t.Fatalf("missing question caption:\n%s", menu)
	}
	if !strings.Contains(menu, `"left":`) || !strings.Contains(menu, `"right":`) {
		t.Fatalf("missing answer choices:\n%s", menu)
	}
}

func TestCompileScenes(t *testing.T) {
	opts := DefaultOptions()
	if strings.Contains(compileTwo(t, opts), "scene bg") {
		t.Fatalf("scenes must be off by default")
	}
	opts.IncludeScenes = true
	script := compileTwo(t, opts)
	if !strings.Contains(script, "scene bg story0") || !strings.Contains(script, "scene bg story1") {
		t.Fatalf("expected scene statements:\n%s", script)
	}
}

func TestCompileQuoting(t *testing.T) {
	s := parsedSituation(t, `Say "hi"?`, 0, "a", "b")
	script, err := Compile([]*story.Situation{s}, story.NewSpeakerRegistry(), nil, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(script, `"Say \"hi\"?"`) {
		t.Fatalf("quotes not escaped:\n%s", script)
	}
}

func TestCompileRejectsUnparsed(t *testing.T) {
	s, err := story.NewSituation("q", 0, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Compile([]*story.Situation{s}, story.NewSpeakerRegistry(), nil, DefaultOptions()); err == nil {
		t.Fatalf("expected error for unparsed situation")
	}
}

func TestCompileRejectsMissingTransition(t *testing.T) {
	s0 := parsedSituation(t, "q0", 0, "a", "b")
	s1 := parsedSituation(t, "q1", 0, "a", "b")
	_, err := Compile([]*story.Situation{s0, s1}, story.NewSpeakerRegistry(), nil, DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "transition") {
		t.Fatalf("expected missing transition error, got %v", err)
	}
}

// section returns the script text from the given label to the next label.
func section(t *testing.T, script, label string) string {
	t.Helper()
	start := strings.Index(script, label)
	if start < 0 {
		t.Fatalf("label %q not found in script:\n%s", label, script)
	}
	rest := script[start+len(label):]
	if end := strings.Index(rest, "\nlabel "); end >= 0 {
		rest = rest[:end]
	}
	return rest
}
