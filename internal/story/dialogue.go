/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package story

// DialogueLine is a single line of the narrative. A nil Speaker means the
// line is plain narration. Lines are created by the parser or the stitcher
// and never mutated afterwards.
type DialogueLine struct {
	Text    string
	Speaker *Speaker
}

// Narration wraps text as a speakerless line.
func Narration(text string) DialogueLine { return DialogueLine{Text: text} }

// Spoken wraps text as a line attributed to a registered speaker.
func Spoken(text string, sp *Speaker) DialogueLine { return DialogueLine{Text: text, Speaker: sp} }

// Transition is the connective narration between the correct ending of
// situation From and the introduction of situation To. Transitions exist only
// for consecutive pairs, so To is always From+1.
type Transition struct {
	From  int
	To    int
	Lines []string
}
