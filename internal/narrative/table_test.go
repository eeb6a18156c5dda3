/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package narrative

import (
	"strings"
	"testing"
)

func TestExtractSpeakerTable(t *testing.T) {
	text := `## Introduction
Some prose.

| Speaker | Dialogue |
|---|---|
| Alice | We should go |
| Bob | Hello there |
`
	rows := extractSpeakerTable(strings.Split(text, "\n"))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Speaker != "Alice" || rows[0].Snippet != "We should go" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ID != 1 || rows[1].Speaker != "Bob" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestExtractSpeakerTableSkipsMalformedRows(t *testing.T) {
	lines := []string{
		"| Speaker | Dialogue |",
		"| :--- | ---: |",
		"| onlyonecell |",
		"|  | no speaker |",
		"| Carol |  |",
		"| Dave | A real line |",
	}
	rows := extractSpeakerTable(lines)
	if len(rows) != 1 || rows[0].Speaker != "Dave" {
		t.Fatalf("expected only Dave, got %+v", rows)
	}
}
