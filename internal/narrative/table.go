/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package narrative

import "strings"

// tableRow is one (speaker, dialogue snippet) pair from the markdown speaker
// table. ID is the row's position in the table; the claimed set in the parser
// refers to rows by this ID.
type tableRow struct {
	ID      int
	Speaker string
	Snippet string
}

// isTableLine reports whether a line uses markdown table syntax. Table lines
// never count as section content.
func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// extractSpeakerTable collects the speaker table rows in document order,
// skipping the header row and the |---| delimiter row.
func extractSpeakerTable(lines []string) []tableRow {
	var rows []tableRow
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := splitTableCells(line)
		if len(cells) < 2 {
			continue
		}
		speaker := strings.TrimSpace(cells[0])
		snippet := strings.TrimSpace(cells[1])
		if speaker == "" || snippet == "" {
			continue
		}
		if isDelimiterCell(speaker) || strings.EqualFold(speaker, "speaker") {
			continue
		}
		rows = append(rows, tableRow{ID: len(rows), Speaker: speaker, Snippet: snippet})
	}
	return rows
}

// splitTableCells splits "| a | b |" into its inner cells.
func splitTableCells(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	return strings.Split(line, "|")
}

// isDelimiterCell detects markdown alignment rows like "---" or ":--:".
func isDelimiterCell(cell string) bool {
	if cell == "" {
		return false
	}
	for _, r := range cell {
		if r != '-' && r != ':' && r != ' ' {
			return false
		}
	}
	return true
}
