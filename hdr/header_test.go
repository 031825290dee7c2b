/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"bytes"
	"testing"
)

func TestHeaderWrite(t *testing.T) {
	tests := []struct {
		h        Header
		exclude  map[string]bool
		expected string
	}{
		{Header{}, nil, ""},
		{
			Header{
				ContentType:   {"text/html; charset=UTF-8"},
				ContentLength: {"0"},
			},
			nil,
			"Content-Length: 0\r\nContent-Type: text/html; charset=UTF-8\r\n",
		},
		{
			Header{
				ContentLength: {"0", "1", "2"},
			},
			nil,
			"Content-Length: 0\r\nContent-Length: 1\r\nContent-Length: 2\r\n",
		},
		{
			Header{
				Expires:         {"-1"},
				ContentLength:   {"0"},
				ContentEncoding: {"gzip"},
			},
			map[string]bool{ContentLength: true},
			"Content-Encoding: gzip\r\nExpires: -1\r\n",
		},
	}

	var buf bytes.Buffer
	for i, tt := range tests {
		buf.Reset()
		if err := tt.h.WriteSubset(&buf, tt.exclude); err != nil {
			t.Errorf("case %d: WriteSubset failed: %v", i, err)
			continue
		}
		if got := buf.String(); got != tt.expected {
			t.Errorf("case %d: got %q, want %q", i, got, tt.expected)
		}
	}
}

func TestHeaderGetSetAddDel(t *testing.T) {
	h := make(Header)
	h.Set("content-type", "text/plain")
	if got := h.Get("Content-Type"); got != "text/plain" {
		t.Errorf("Get is case-insensitive via CanonicalHeaderKey, got %q", got)
	}
	h.Add("X-Custom", "a")
	h.Add("X-Custom", "b")
	if got := h["X-Custom"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Add should append, got %v", got)
	}
	h.Del("X-Custom")
	if _, ok := h["X-Custom"]; ok {
		t.Error("Del should remove the key")
	}
}

func TestHeaderClone(t *testing.T) {
	h := Header{"A": {"1", "2"}}
	h2 := h.Clone()
	h2["A"][0] = "changed"
	if h["A"][0] != "1" {
		t.Error("Clone should deep-copy value slices")
	}
}

func TestCanonicalHeaderKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"content-type", "Content-Type"},
		{"Content-Type", "Content-Type"},
		{"accept-encoding", "Accept-Encoding"},
		{"foo bar", "foo bar"}, // invalid field byte: returned unchanged
	}
	for _, tt := range tests {
		if got := CanonicalHeaderKey(tt.in); got != tt.want {
			t.Errorf("CanonicalHeaderKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidHeaderFieldNameAndValue(t *testing.T) {
	if !ValidHeaderFieldName("Content-Type") {
		t.Error("Content-Type should be a valid header field name")
	}
	if ValidHeaderFieldName("") {
		t.Error("empty string should not be a valid header field name")
	}
	if ValidHeaderFieldName("a b") {
		t.Error("a field name with a space should be invalid")
	}
	if !ValidHeaderFieldValue("text/plain; charset=utf-8") {
		t.Error("a plain value should be valid")
	}
	if ValidHeaderFieldValue("bad\x00value") {
		t.Error("a value with a NUL byte should be invalid")
	}
}
