/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export packages a finished run for distribution: a zip bundle of
// the game files and a PDF transcript of the correct-path story.
package export

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteBundle zips the compiled script and the background art directory into
// outPath. The script lands at game/script.rpy, images under game/images/.
func WriteBundle(outPath, scriptPath, artDir string) error {
	if !strings.HasSuffix(strings.ToLower(outPath), ".zip") {
		outPath += ".zip"
	}
	zw, f, err := createZip(outPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if err := addZipFile(zw, "game/script.rpy", script); err != nil {
		return fmt.Errorf("zip add script: %w", err)
	}

	if artDir != "" {
		entries, err := os.ReadDir(artDir)
		if err == nil {
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
					continue
				}
				img, err := os.ReadFile(filepath.Join(artDir, e.Name()))
				if err != nil {
					return fmt.Errorf("read background %s: %w", e.Name(), err)
				}
				if err := addZipFile(zw, "game/images/"+e.Name(), img); err != nil {
					return fmt.Errorf("zip add background %s: %w", e.Name(), err)
				}
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}

func createZip(outPath string) (*zip.Writer, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create bundle: %w", err)
	}
	return zip.NewWriter(f), f, nil
}

func addZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
