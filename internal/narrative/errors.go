/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package narrative

import "fmt"

// The parse error taxonomy. All three are recoverable: the caller discards the
// whole batch and regenerates the narrative text from scratch.

// SectionNotFoundError reports a missing required heading.
type SectionNotFoundError struct {
	Heading string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found in generated text", e.Heading)
}

// EmptySectionError reports a heading with no content lines under it.
type EmptySectionError struct {
	Heading string
}

func (e *EmptySectionError) Error() string {
	return fmt.Sprintf("section %q has no content", e.Heading)
}

// IncompleteParseError reports a mismatch between parsed endings and the
// situation's answers.
type IncompleteParseError struct {
	Want int
	Got  int
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("parsed %d endings for %d answers", e.Got, e.Want)
}
