/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package stitch

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeSplitsSentences(t *testing.T) {
	raw := "The door creaks open. A cold wind follows.\n\nYou step through"
	got := Normalize(raw)
	want := []string{"The door creaks open.", "A cold wind follows.", "You step through"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %#v", got)
	}
}

func TestNormalizeDropsBarePeriods(t *testing.T) {
	got := Normalize(". \n  .\nReal sentence.")
	want := []string{"Real sentence."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %#v", got)
	}
}

func TestStitchLinksConsecutiveSituations(t *testing.T) {
	tr, err := Stitch(2, "Onward we go. The path narrows.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.From != 2 || tr.To != 3 {
		t.Fatalf("unexpected link: %d->%d", tr.From, tr.To)
	}
	if len(tr.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %#v", tr.Lines)
	}
}

func TestStitchEmptyText(t *testing.T) {
	for _, raw := range []string{"", "   \n\n  ", ". ."} {
		if _, err := Stitch(0, raw); !errors.Is(err, ErrEmptyTransition) {
			t.Fatalf("expected ErrEmptyTransition for %q, got %v", raw, err)
		}
	}
}
