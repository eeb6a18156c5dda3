/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// vnforge turns a quiz scenario into a playable branching visual-novel
// script: it generates narrative text for every situation, parses it into
// attributed dialogue, stitches the transitions and compiles a Ren'Py
// script.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vnforge/internal/config"
	"vnforge/internal/crash"
	"vnforge/internal/export"
	"vnforge/internal/gen"
	applog "vnforge/internal/log"
	"vnforge/internal/pipeline"
	"vnforge/internal/renpy"
	"vnforge/internal/scenario"
	"vnforge/internal/telemetry"
	"vnforge/internal/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return
		case "set-key":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: vnforge set-key <api-key>")
				os.Exit(1)
			}
			if err := config.StoreAPIKey(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "store key: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("API key stored in the OS keyring.")
			return
		}
	}

	var (
		scriptPath = flag.String("o", "", "output script path (overrides config)")
		attempts   = flag.Int("attempts", 0, "max whole-batch attempts (overrides config)")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: vnforge [flags] <scenario.yaml>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// .env is optional; it carries GEMINI_API_KEY during development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	applog.Init(applog.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, File: cfg.Logging.File})
	defer crash.Recover()

	if *scriptPath != "" {
		cfg.Output.ScriptPath = *scriptPath
	}
	if *attempts > 0 {
		cfg.Generator.MaxAttempts = *attempts
	}

	if err := run(context.Background(), cfg, flag.Arg(0)); err != nil {
		applog.L().Error("run failed", "err", err)
		fmt.Fprintf(os.Stderr, "vnforge: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.AppConfig, scenarioPath string) error {
	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}
	situations, err := sc.Build()
	if err != nil {
		return err
	}

	apiKey, err := config.APIKey()
	if err != nil {
		return err
	}
	generator, err := gen.NewGeminiGenerator(ctx, apiKey, cfg.Generator.Model, cfg.Generator.RequestsPerMin)
	if err != nil {
		return err
	}
	defer generator.Close()

	telemetry.Event("run_started", map[string]any{"situations": len(situations)})

	opts := renpy.DefaultOptions()
	opts.IncludeScenes = cfg.Art.Enabled

	pipe := pipeline.New(generator, cfg.Generator.MaxAttempts)
	result, err := pipe.Run(ctx, situations, opts)
	if err != nil {
		return err
	}

	if err := renpy.WriteScript(cfg.Output.ScriptPath, result.Script); err != nil {
		return err
	}
	fmt.Printf("Compiled %d situations into %s (attempt %d)\n",
		len(situations), cfg.Output.ScriptPath, result.Attempts)

	if cfg.Art.Enabled && cfg.Art.Endpoint != "" {
		artist := gen.NewHTTPArtist(cfg.Art.Endpoint, time.Duration(cfg.Art.TimeoutMs)*time.Millisecond)
		prompts := make([]string, len(situations))
		for i, s := range situations {
			prompts[i] = gen.ScenePrompt(s)
		}
		if err := gen.PaintAll(ctx, artist, prompts, cfg.Output.ArtDir); err != nil {
			return err
		}
		fmt.Printf("Painted %d backgrounds into %s\n", len(prompts), cfg.Output.ArtDir)
	}

	if cfg.Output.BundlePath != "" {
		if err := export.WriteBundle(cfg.Output.BundlePath, cfg.Output.ScriptPath, cfg.Output.ArtDir); err != nil {
			return err
		}
		fmt.Printf("Bundled game into %s\n", cfg.Output.BundlePath)
	}
	if cfg.Output.TranscriptPath != "" {
		if err := export.WriteTranscript(cfg.Output.TranscriptPath, sc.Title, situations); err != nil {
			return err
		}
		fmt.Printf("Wrote transcript to %s\n", cfg.Output.TranscriptPath)
	}
	return nil
}
