/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package telemetry

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "on"} {
		if !parseBool(v) {
			t.Fatalf("expected %q to parse true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		if parseBool(v) {
			t.Fatalf("expected %q to parse false", v)
		}
	}
}

func TestClientDisabledByDefault(t *testing.T) {
	c := New(Config{Timeout: time.Second})
	defer c.Close()
	if c.Enabled() {
		t.Fatalf("client must be disabled without opt-in")
	}
	// Must not panic or block.
	c.Event("noop", nil)
}

func TestClientSendsEvent(t *testing.T) {
	received := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		received <- payload
	}))
	defer srv.Close()

	c := New(Config{OptIn: true, EventsURL: srv.URL, Timeout: time.Second})
	defer c.Close()
	if !c.Enabled() {
		t.Fatalf("expected enabled client")
	}
	c.Event("batch_compiled", map[string]any{"attempts": 2})

	select {
	case payload := <-received:
		if payload["name"] != "batch_compiled" {
			t.Fatalf("unexpected event name: %v", payload["name"])
		}
		if payload["attempts"] != float64(2) {
			t.Fatalf("unexpected props: %v", payload)
		}
		if payload["version"] == "" {
			t.Fatalf("version missing: %v", payload)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("event never delivered")
	}
}

func TestClientEventWithoutURL(t *testing.T) {
	c := New(Config{OptIn: true, Timeout: time.Second})
	defer c.Close()
	if c.Enabled() {
		t.Fatalf("opt-in without URL must stay disabled")
	}
}

func TestUploadCrash(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer srv.Close()

	c := New(Config{OptIn: true, CrashURL: srv.URL, Timeout: time.Second})
	defer c.Close()
	c.UploadCrash([]byte("report body"))

	select {
	case body := <-received:
		if string(body) != "report body" {
			t.Fatalf("unexpected body: %q", body)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("crash report never uploaded")
	}
}
