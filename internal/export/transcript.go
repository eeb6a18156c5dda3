/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"vnforge/internal/story"
)

// WriteTranscript renders the correct-path story of every situation to a PDF
// for review. Built-in Helvetica keeps the text vector without embedding.
func WriteTranscript(outPath, title string, situations []*story.Situation) error {
	if !strings.HasSuffix(strings.ToLower(outPath), ".pdf") {
		outPath += ".pdf"
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAuthor("vnforge", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 24, title, "", "C", false)
	pdf.Ln(12)

	for i, s := range situations {
		lines, err := s.GoodStory()
		if err != nil {
			return fmt.Errorf("situation %d: %w", i, err)
		}

		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 18, fmt.Sprintf("%d. %s", i+1, s.Question()), "", "L", false)
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range lines {
			text := line.Text
			if line.Speaker != nil {
				text = line.Speaker.Name + ": " + text
			}
			pdf.MultiCell(0, 15, text, "", "L", false)
		}
		pdf.Ln(10)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
