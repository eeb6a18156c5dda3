/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package narrative

import "testing"

func TestMatcherWordGap(t *testing.T) {
	m, ok := NewLineMatcher("Bob", "Hello there")
	if !ok {
		t.Fatalf("expected matcher to build")
	}
	if !m.Matches("Hello,    there friend") {
		t.Fatalf("expected fuzzy match across punctuation and spacing")
	}
	if !m.Matches("\"Hello there!\" he said") {
		t.Fatalf("expected match inside a longer line")
	}
	if m.Matches("Goodbye friend") {
		t.Fatalf("unexpected match")
	}
	if m.Matches("there Hello") {
		t.Fatalf("word order must be preserved")
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	m, ok := NewLineMatcher("Bob", "hello THERE")
	if !ok {
		t.Fatalf("expected matcher to build")
	}
	if !m.Matches("Hello there") {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestMatcherQuotesRegexMetacharacters(t *testing.T) {
	m, ok := NewLineMatcher("Alice", "What?! (really)")
	if !ok {
		t.Fatalf("expected matcher to build")
	}
	if !m.Matches("She said: What?! (really)") {
		t.Fatalf("expected literal match of metacharacters")
	}
	if m.Matches("What really") {
		t.Fatalf("metacharacters must not act as regex syntax")
	}
}

func TestMatcherEmptySnippet(t *testing.T) {
	if _, ok := NewLineMatcher("Bob", "   "); ok {
		t.Fatalf("blank snippet must not produce a matcher")
	}
}
