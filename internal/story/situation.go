/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package story defines the core entity model for the branching narrative:
// situations with their answers, attributed dialogue lines, the speaker
// registry and the connective transitions between situations.
package story

import (
	"errors"
	"fmt"
)

// ErrNotParsed is returned by narrative accessors before a successful parse
// has populated the situation.
var ErrNotParsed = errors.New("situation narrative has not been parsed")

// InvalidSituationError reports malformed scenario input. It is fatal; the
// pipeline never retries it.
type InvalidSituationError struct {
	Reason string
}

func (e *InvalidSituationError) Error() string {
	return "invalid situation: " + e.Reason
}

// Situation is one question/branch point. Question, answers and the correct
// answer index are immutable after construction; the narrative fields are
// populated exactly once per successful parse and cleared on retry.
type Situation struct {
	question           string
	answers            []string
	correctAnswerIndex int

	introduction []DialogueLine
	endings      [][]DialogueLine
	parsed       bool
}

// NewSituation validates eagerly: at least two answers and an in-range
// correct answer index, otherwise an InvalidSituationError.
func NewSituation(question string, correctAnswerIndex int, answers ...string) (*Situation, error) {
	if len(answers) < 2 {
		return nil, &InvalidSituationError{Reason: fmt.Sprintf("need at least 2 answers, got %d", len(answers))}
	}
	if correctAnswerIndex < 0 || correctAnswerIndex >= len(answers) {
		return nil, &InvalidSituationError{Reason: fmt.Sprintf("correct answer index %d out of range [0,%d)", correctAnswerIndex, len(answers))}
	}
	return &Situation{
		question:           question,
		answers:            append([]string(nil), answers...),
		correctAnswerIndex: correctAnswerIndex,
	}, nil
}

func (s *Situation) Question() string { return s.question }

// Answers returns a copy; callers cannot mutate the situation through it.
func (s *Situation) Answers() []string { return append([]string(nil), s.answers...) }

func (s *Situation) AnswerCount() int { return len(s.answers) }

func (s *Situation) CorrectAnswerIndex() int { return s.correctAnswerIndex }

func (s *Situation) CorrectAnswer() string { return s.answers[s.correctAnswerIndex] }

// Parsed reports whether a successful parse has populated the narrative.
func (s *Situation) Parsed() bool { return s.parsed }

// SetNarrative installs the parsed introduction and endings. The endings must
// be index-aligned with the answers and each must hold at least one line.
func (s *Situation) SetNarrative(introduction []DialogueLine, endings [][]DialogueLine) error {
	if len(introduction) == 0 {
		return errors.New("introduction must not be empty")
	}
	if len(endings) != len(s.answers) {
		return fmt.Errorf("got %d endings for %d answers", len(endings), len(s.answers))
	}
	for i, e := range endings {
		if len(e) == 0 {
			return fmt.Errorf("ending %d is empty", i)
		}
	}
	s.introduction = introduction
	s.endings = endings
	s.parsed = true
	return nil
}

// ClearNarrative drops any parsed state so a retried batch starts clean.
func (s *Situation) ClearNarrative() {
	s.introduction = nil
	s.endings = nil
	s.parsed = false
}

// Introduction returns the parsed introduction lines.
func (s *Situation) Introduction() ([]DialogueLine, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	return s.introduction, nil
}

// Endings returns all parsed endings, index-aligned with the answers.
func (s *Situation) Endings() ([][]DialogueLine, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	return s.endings, nil
}

// Ending returns the parsed ending for one answer index.
func (s *Situation) Ending(answerIndex int) ([]DialogueLine, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	if answerIndex < 0 || answerIndex >= len(s.endings) {
		return nil, fmt.Errorf("answer index %d out of range [0,%d)", answerIndex, len(s.endings))
	}
	return s.endings[answerIndex], nil
}

// GoodEnding returns the ending reached by the correct answer.
func (s *Situation) GoodEnding() ([]DialogueLine, error) {
	return s.Ending(s.correctAnswerIndex)
}

// GoodStory is the full correct-path reading of the situation: introduction,
// the correct answer spoken as narration, then the good ending.
func (s *Situation) GoodStory() ([]DialogueLine, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	out := make([]DialogueLine, 0, len(s.introduction)+1+len(s.endings[s.correctAnswerIndex]))
	out = append(out, s.introduction...)
	out = append(out, Narration(s.CorrectAnswer()))
	out = append(out, s.endings[s.correctAnswerIndex]...)
	return out, nil
}
