/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	applog "vnforge/internal/log"
)

// Artist produces one background image for a scene prompt.
type Artist interface {
	Paint(ctx context.Context, prompt string) ([]byte, error)
}

// HTTPArtist posts scene prompts to an image-generation endpoint and caches
// the results by prompt. Scene prompts are stable across batch retries, so
// a retried run never repaints a background it already has.
type HTTPArtist struct {
	endpoint string
	client   *http.Client
	cache    *cache.Cache
	log      *slog.Logger
}

func NewHTTPArtist(endpoint string, timeout time.Duration) *HTTPArtist {
	return &HTTPArtist{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		cache:    cache.New(30*time.Minute, time.Hour),
		log:      applog.WithComponent("artist"),
	}
}

type paintRequest struct {
	Prompt string `json:"prompt"`
}

// Paint returns the PNG bytes for a scene prompt.
func (a *HTTPArtist) Paint(ctx context.Context, prompt string) ([]byte, error) {
	if img, ok := a.cache.Get(prompt); ok {
		a.log.Debug("background served from cache")
		return img.([]byte), nil
	}

	body, err := json.Marshal(paintRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paint request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paint request: %s", resp.Status)
	}
	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	a.cache.Set(prompt, img, cache.DefaultExpiration)
	return img, nil
}

// PaintAll renders one background per prompt concurrently and writes them as
// story{i}.png under dir. Background art is independent of the sequential
// parse flow, so the fan-out is safe.
func PaintAll(ctx context.Context, artist Artist, prompts []string, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure art dir: %w", err)
	}
	eg, egCtx := errgroup.WithContext(ctx)
	for i, prompt := range prompts {
		i, prompt := i, prompt
		eg.Go(func() error {
			img, err := artist.Paint(egCtx, prompt)
			if err != nil {
				return fmt.Errorf("background %d: %w", i, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("story%d.png", i))
			if err := os.WriteFile(path, img, 0o644); err != nil {
				return fmt.Errorf("write background %d: %w", i, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
