/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scenario reads the quiz scenario file that drives a generation
// run: the ordered situations with their answers and correct answer index.
// A malformed scenario is a fatal input error, never retried.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"vnforge/internal/story"
)

// File is the on-disk scenario document.
type File struct {
	Title      string            `yaml:"title" json:"title"`
	Situations []SituationConfig `yaml:"situations" json:"situations"`
}

// SituationConfig is one scenario entry before entity validation.
type SituationConfig struct {
	Question      string   `yaml:"question" json:"question"`
	Answers       []string `yaml:"answers" json:"answers"`
	CorrectAnswer int      `yaml:"correct_answer" json:"correct_answer"`
}

// schemaJSON is validated against the YAML document after conversion to
// JSON. Structural problems are caught here with readable paths; the
// entity-level rules (index in range) live in story.NewSituation.
const schemaJSON = `{
  "type": "object",
  "required": ["situations"],
  "properties": {
    "title": {"type": "string"},
    "situations": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["question", "answers", "correct_answer"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "answers": {
            "type": "array",
            "minItems": 2,
            "items": {"type": "string", "minLength": 1}
          },
          "correct_answer": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return f, nil
}

// Parse validates the YAML document against the schema and decodes it.
func Parse(data []byte) (*File, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert scenario to json: %w", err)
	}
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schemaJSON), gojsonschema.NewBytesLoader(asJSON))
	if err != nil {
		return nil, fmt.Errorf("validate scenario: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid scenario: %s", strings.Join(msgs, "; "))
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &f, nil
}

// Build constructs the validated entity model from the scenario entries.
func (f *File) Build() ([]*story.Situation, error) {
	situations := make([]*story.Situation, 0, len(f.Situations))
	for i, sc := range f.Situations {
		s, err := story.NewSituation(sc.Question, sc.CorrectAnswer, sc.Answers...)
		if err != nil {
			return nil, fmt.Errorf("situation %d: %w", i, err)
		}
		situations = append(situations, s)
	}
	return situations, nil
}
