/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads the user-scope YAML configuration, applies
// environment overrides and resolves the Gemini API key from the environment
// or the OS keyring.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

// GeneratorConfig controls the text-generation collaborator.
type GeneratorConfig struct {
	Model          string `yaml:"model"`
	MaxAttempts    int    `yaml:"max_attempts"`     // whole-batch retries
	RequestsPerMin int    `yaml:"requests_per_min"` // rate limit for API calls
}

// ArtConfig controls the background-art collaborator.
type ArtConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// OutputConfig names the files the run produces.
type OutputConfig struct {
	ScriptPath     string `yaml:"script_path"`
	ArtDir         string `yaml:"art_dir"`
	BundlePath     string `yaml:"bundle_path"`     // optional zip of the game
	TranscriptPath string `yaml:"transcript_path"` // optional PDF transcript
}

// LoggingConfig mirrors internal/log.Options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int             `yaml:"config_version"`
	Generator     GeneratorConfig `yaml:"generator"`
	Art           ArtConfig       `yaml:"art"`
	Output        OutputConfig    `yaml:"output"`
	Logging       LoggingConfig   `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Generator:     GeneratorConfig{Model: "gemini-2.5-pro", MaxAttempts: 5, RequestsPerMin: 30},
		Art:           ArtConfig{Enabled: false, TimeoutMs: 60000},
		Output:        OutputConfig{ScriptPath: "game/script.rpy", ArtDir: "game/images"},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvModel          = "VNF_MODEL"
	EnvMaxAttempts    = "VNF_MAX_ATTEMPTS"
	EnvRequestsPerMin = "VNF_REQUESTS_PER_MIN"
	EnvArtEndpoint    = "VNF_ART_ENDPOINT"
	EnvScriptPath     = "VNF_SCRIPT_PATH"
	EnvLogLevel       = "VNF_LOG_LEVEL"
	EnvLogFormat      = "VNF_LOG_FORMAT"
	EnvLogFile        = "VNF_LOG_FILE"
	EnvAPIKey         = "GEMINI_API_KEY"
)

// Keyring service/key for the API key.
const (
	keyringService = "vnforge"
	keyringAPIKey  = "gemini_api_key"
)

// SecretStore abstracts the OS keyring so tests can stub it.
type SecretStore interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
}

type osKeyring struct{}

func (osKeyring) Get(service, key string) (string, error) { return keyring.Get(service, key) }
func (osKeyring) Set(service, key, value string) error    { return keyring.Set(service, key, value) }

var secrets SecretStore = osKeyring{}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "vnforge")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "vnforge")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".config", "vnforge")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file if present, applies defaults and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// APIKey resolves the Gemini API key: environment first, then the OS
// keyring.
func APIKey() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}
	v, err := secrets.Get(keyringService, keyringAPIKey)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("no API key: set %s or store one with 'vnforge set-key'", EnvAPIKey)
	}
	return v, nil
}

// StoreAPIKey persists the API key into the OS keyring.
func StoreAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("refusing to store an empty API key")
	}
	return secrets.Set(keyringService, keyringAPIKey, key)
}

func mergeInto(dst, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.Generator.Model) != "" {
		dst.Generator.Model = src.Generator.Model
	}
	if src.Generator.MaxAttempts > 0 {
		dst.Generator.MaxAttempts = src.Generator.MaxAttempts
	}
	if src.Generator.RequestsPerMin > 0 {
		dst.Generator.RequestsPerMin = src.Generator.RequestsPerMin
	}
	dst.Art.Enabled = src.Art.Enabled
	if strings.TrimSpace(src.Art.Endpoint) != "" {
		dst.Art.Endpoint = src.Art.Endpoint
	}
	if src.Art.TimeoutMs > 0 {
		dst.Art.TimeoutMs = src.Art.TimeoutMs
	}
	if strings.TrimSpace(src.Output.ScriptPath) != "" {
		dst.Output.ScriptPath = src.Output.ScriptPath
	}
	if strings.TrimSpace(src.Output.ArtDir) != "" {
		dst.Output.ArtDir = src.Output.ArtDir
	}
	if strings.TrimSpace(src.Output.BundlePath) != "" {
		dst.Output.BundlePath = src.Output.BundlePath
	}
	if strings.TrimSpace(src.Output.TranscriptPath) != "" {
		dst.Output.TranscriptPath = src.Output.TranscriptPath
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		cfg.Generator.Model = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxAttempts)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Generator.MaxAttempts = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvRequestsPerMin)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Generator.RequestsPerMin = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvArtEndpoint)); v != "" {
		cfg.Art.Endpoint = v
		cfg.Art.Enabled = true
	}
	if v := strings.TrimSpace(os.Getenv(EnvScriptPath)); v != "" {
		cfg.Output.ScriptPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
