/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package pipeline runs the whole generation batch: generate and parse every
// situation in order, stitch every transition, then compile once. Any
// recoverable failure discards the attempt completely and the batch restarts
// from the first situation; there is no partial resume.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vnforge/internal/gen"
	applog "vnforge/internal/log"
	"vnforge/internal/narrative"
	"vnforge/internal/renpy"
	"vnforge/internal/stitch"
	"vnforge/internal/story"
	"vnforge/internal/telemetry"
)

// Pipeline drives bounded whole-batch retries over a text generator.
type Pipeline struct {
	gen         gen.Generator
	maxAttempts int
	log         *slog.Logger
}

// Result is a fully consistent batch: every situation parsed, every
// transition stitched, and the compiled script.
type Result struct {
	Script      string
	Registry    *story.SpeakerRegistry
	Transitions []*story.Transition
	Attempts    int
}

// New builds a pipeline. maxAttempts must be at least 1.
func New(g gen.Generator, maxAttempts int) *Pipeline {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Pipeline{gen: g, maxAttempts: maxAttempts, log: applog.WithComponent("pipeline")}
}

// Run executes up to maxAttempts whole-batch attempts and compiles the first
// consistent one. Context cancelation aborts immediately; recoverable parse
// and stitch failures trigger a fresh attempt.
func (p *Pipeline) Run(ctx context.Context, situations []*story.Situation, opts renpy.Options) (*Result, error) {
	if len(situations) == 0 {
		return nil, errors.New("no situations")
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		registry, transitions, err := p.attempt(ctx, situations)
		if err == nil {
			script, cerr := renpy.Compile(situations, registry, transitions, opts)
			if cerr != nil {
				return nil, fmt.Errorf("compile: %w", cerr)
			}
			p.log.Info("batch compiled", slog.Int("attempt", attempt), slog.Int("speakers", registry.Len()))
			telemetry.Event("batch_compiled", map[string]any{"attempts": attempt, "situations": len(situations)})
			return &Result{Script: script, Registry: registry, Transitions: transitions, Attempts: attempt}, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		p.log.Warn("attempt failed, regenerating the whole batch",
			slog.Int("attempt", attempt), slog.Any("err", err))
		telemetry.Event("batch_retry", map[string]any{"attempt": attempt})
	}
	return nil, fmt.Errorf("batch failed after %d attempts: %w", p.maxAttempts, lastErr)
}

// attempt runs one full generate-parse-stitch pass with a fresh registry.
// Situations are wiped up front so a failed attempt never leaks state into
// the next one.
func (p *Pipeline) attempt(ctx context.Context, situations []*story.Situation) (*story.SpeakerRegistry, []*story.Transition, error) {
	for _, s := range situations {
		s.ClearNarrative()
	}
	registry := story.NewSpeakerRegistry()
	parser := narrative.New(registry)

	for i, s := range situations {
		p.log.Info("generating situation", slog.Int("situation", i), slog.String("question", s.Question()))
		raw, err := p.gen.Generate(ctx, gen.SituationPrompt(s))
		if err != nil {
			return nil, nil, fmt.Errorf("generate situation %d: %w", i, err)
		}
		if err := parser.ParseSituation(s, raw); err != nil {
			return nil, nil, fmt.Errorf("parse situation %d: %w", i, err)
		}
	}

	transitions := make([]*story.Transition, 0, len(situations)-1)
	for i := 0; i < len(situations)-1; i++ {
		p.log.Info("generating transition", slog.Int("from", i), slog.Int("to", i+1))
		prev, err := situations[i].GoodStory()
		if err != nil {
			return nil, nil, err
		}
		next, err := situations[i+1].Introduction()
		if err != nil {
			return nil, nil, err
		}
		raw, err := p.gen.Generate(ctx, gen.TransitionPrompt(prev, next))
		if err != nil {
			return nil, nil, fmt.Errorf("generate transition %d: %w", i, err)
		}
		t, err := stitch.Stitch(i, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("transition %d: %w", i, err)
		}
		transitions = append(transitions, t)
	}
	return registry, transitions, nil
}
