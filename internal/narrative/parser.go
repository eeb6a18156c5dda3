/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package narrative parses the generated markdown for one situation into
// attributed dialogue. The generator is prompted to emit a fixed layout: an
// "Introduction" section, one "Ending with answer i" section per answer, and
// a markdown table mapping speakers to dialogue snippets. Anything that
// deviates from that layout is a parse failure; the caller regenerates the
// whole batch.
package narrative

import (
	"fmt"
	"log/slog"
	"strings"

	applog "vnforge/internal/log"
	"vnforge/internal/story"
)

// Heading titles the generator must emit.
const (
	introHeading        = "Introduction"
	endingHeadingFormat = "Ending with answer %d"
)

// Parser populates situations from generated text, discovering speakers into
// the shared registry as it goes.
type Parser struct {
	registry *story.SpeakerRegistry
	log      *slog.Logger
}

func New(registry *story.SpeakerRegistry) *Parser {
	return &Parser{registry: registry, log: applog.WithComponent("narrative")}
}

// ParseSituation parses raw generated text into the situation's introduction
// and endings. On any failure the situation is left without narrative state
// so the retried batch starts clean.
func (p *Parser) ParseSituation(s *story.Situation, raw string) error {
	s.ClearNarrative()

	lines := strings.Split(raw, "\n")
	rows := extractSpeakerTable(lines)
	matchers := make([]*LineMatcher, 0, len(rows))
	for _, row := range rows {
		m, ok := NewLineMatcher(row.Speaker, row.Snippet)
		if !ok {
			p.log.Debug("skipping unusable speaker table row", slog.Int("row", row.ID), slog.String("speaker", row.Speaker))
			continue
		}
		matchers = append(matchers, m)
	}

	// Each table row attributes at most one body line across the whole
	// situation; claimed tracks consumed rows by index.
	claimed := make(map[int]bool, len(matchers))
	attribute := func(line string) story.DialogueLine {
		for i, m := range matchers {
			if claimed[i] {
				continue
			}
			if m.Matches(line) {
				claimed[i] = true
				return story.Spoken(line, p.registry.Register(m.Speaker()))
			}
		}
		return story.Narration(line)
	}

	cur := newCursor(raw)
	if !cur.seekHeading(introHeading) {
		return &SectionNotFoundError{Heading: introHeading}
	}
	introLines := cur.collectSection()
	if len(introLines) == 0 {
		return &EmptySectionError{Heading: introHeading}
	}
	introduction := make([]story.DialogueLine, 0, len(introLines))
	for _, line := range introLines {
		introduction = append(introduction, attribute(line))
	}

	endings := make([][]story.DialogueLine, 0, s.AnswerCount())
	for i := 0; i < s.AnswerCount(); i++ {
		heading := fmt.Sprintf(endingHeadingFormat, i)
		if !cur.seekHeading(heading) {
			return &SectionNotFoundError{Heading: heading}
		}
		sectionLines := cur.collectSection()
		if len(sectionLines) == 0 {
			return &EmptySectionError{Heading: heading}
		}
		ending := make([]story.DialogueLine, 0, len(sectionLines))
		for _, line := range sectionLines {
			ending = append(ending, attribute(line))
		}
		endings = append(endings, ending)
	}

	if len(endings) != s.AnswerCount() {
		return &IncompleteParseError{Want: s.AnswerCount(), Got: len(endings)}
	}
	if err := s.SetNarrative(introduction, endings); err != nil {
		return &IncompleteParseError{Want: s.AnswerCount(), Got: len(endings)}
	}

	// Speakers that only ever appeared in the table still need stable
	// identifiers; register them once the parse is known good.
	for _, m := range matchers {
		p.registry.Register(m.Speaker())
	}
	p.log.Debug("situation parsed",
		slog.Int("introduction_lines", len(introduction)),
		slog.Int("endings", len(endings)),
		slog.Int("attributed_rows", len(claimed)))
	return nil
}
