/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteBundle(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.rpy")
	if err := os.WriteFile(scriptPath, []byte("label start:\n    return\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	artDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(artDir, 0o755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(artDir, "story0.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(artDir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outPath := filepath.Join(dir, "bundle") // extension added automatically
	if err := WriteBundle(outPath, scriptPath, artDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zr, err := zip.OpenReader(outPath + ".zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer zr.Close()

	entries := map[string]string{}
	for _, zf := range zr.File {
		r, err := zf.Open()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entries[zf.Name] = string(data)
	}

	if entries["game/script.rpy"] != "label start:\n    return\n" {
		t.Fatalf("script entry wrong: %+v", entries)
	}
	if entries["game/images/story0.png"] != "png" {
		t.Fatalf("background entry wrong: %+v", entries)
	}
	if _, ok := entries["game/images/notes.txt"]; ok {
		t.Fatalf("non-png file must not be bundled: %+v", entries)
	}
	if len(entries) != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestWriteBundleWithoutArt(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.rpy")
	if err := os.WriteFile(scriptPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outPath := filepath.Join(dir, "bundle.zip")
	if err := WriteBundle(outPath, scriptPath, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zr, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "game/script.rpy" {
		t.Fatalf("unexpected entries: %+v", zr.File)
	}
}

func TestWriteBundleMissingScript(t *testing.T) {
	dir := t.TempDir()
	if err := WriteBundle(filepath.Join(dir, "b.zip"), filepath.Join(dir, "missing.rpy"), ""); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
