/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package story

import "fmt"

// Speaker is a character discovered during parsing. ID is the stable
// script-visible identifier issued at registration time; compiled labels
// reference it directly, so it never shifts when more speakers are added.
type Speaker struct {
	ID   string
	Name string
}

// SpeakerRegistry collects the distinct speakers seen across all situations.
// Registration is idempotent and never forgets a previously seen speaker.
type SpeakerRegistry struct {
	byName map[string]*Speaker
	order  []*Speaker
}

func NewSpeakerRegistry() *SpeakerRegistry {
	return &SpeakerRegistry{byName: make(map[string]*Speaker)}
}

// Register returns the speaker for name, creating it with the next stable
// identifier if it has not been seen before.
func (r *SpeakerRegistry) Register(name string) *Speaker {
	if sp, ok := r.byName[name]; ok {
		return sp
	}
	sp := &Speaker{ID: fmt.Sprintf("c%d", len(r.order)), Name: name}
	r.byName[name] = sp
	r.order = append(r.order, sp)
	return sp
}

// Lookup finds a speaker without registering it.
func (r *SpeakerRegistry) Lookup(name string) (*Speaker, bool) {
	sp, ok := r.byName[name]
	return sp, ok
}

// All returns the speakers in registration order.
func (r *SpeakerRegistry) All() []*Speaker {
	return append([]*Speaker(nil), r.order...)
}

func (r *SpeakerRegistry) Len() int { return len(r.order) }
