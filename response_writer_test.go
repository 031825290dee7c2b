/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"testing"

	"github.com/sammyne/go-net/hdr"
)

func TestBufferedResponseWriterImplicitWriteHeader(t *testing.T) {
	w := NewBufferedResponseWriter()
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	status, header, body := w.Result()
	if status != StatusOK {
		t.Errorf("status = %d, want %d (implicit WriteHeader)", status, StatusOK)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
	if ct := header.Get(hdr.ContentType); ct == "" {
		t.Error("Content-Type should be sniffed on first Write")
	}
}

func TestBufferedResponseWriterExplicitHeaderWins(t *testing.T) {
	w := NewBufferedResponseWriter()
	w.Header().Set(hdr.ContentType, "application/json")
	w.WriteHeader(StatusCreated)
	_, _ = w.Write([]byte(`{"ok":true}`))

	status, header, _ := w.Result()
	if status != StatusCreated {
		t.Errorf("status = %d, want %d", status, StatusCreated)
	}
	if ct := header.Get(hdr.ContentType); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json (explicit header must not be overwritten by sniffing)", ct)
	}
}

func TestBufferedResponseWriterHeaderMutationAfterCommitIsIneffective(t *testing.T) {
	w := NewBufferedResponseWriter()
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Mutating the map Header() returns after commit must not reach
	// whatever Result() reports.
	w.Header().Set("X-Foo", "bar")

	_, header, _ := w.Result()
	if got := header.Get("X-Foo"); got != "" {
		t.Errorf("X-Foo = %q, want empty: headers set after commit must have no effect", got)
	}
}

func TestBufferedResponseWriterSuperfluousWriteHeaderIgnored(t *testing.T) {
	w := NewBufferedResponseWriter()
	w.WriteHeader(StatusNotFound)
	w.WriteHeader(StatusOK)

	status, _, _ := w.Result()
	if status != StatusNotFound {
		t.Errorf("status = %d, want %d (second WriteHeader call must be a no-op)", status, StatusNotFound)
	}
}
