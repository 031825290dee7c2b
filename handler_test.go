/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"strings"
	"testing"

	"github.com/sammyne/go-net/hdr"
)

func TestNotFoundResponse(t *testing.T) {
	w := NewBufferedResponseWriter()
	NotFound(w, &Request{})

	status, header, body := w.Result()
	if status != StatusNotFound {
		t.Errorf("status = %d, want %d", status, StatusNotFound)
	}
	if got := header.Get(hdr.ContentType); got != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/plain; charset=utf-8", got)
	}
	if got := header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if !strings.HasSuffix(string(body), "404 page not found\n") {
		t.Errorf("body = %q, want trailing \"404 page not found\\n\"", body)
	}
}

func TestRedirect(t *testing.T) {
	w := NewBufferedResponseWriter()
	Redirect(w, &Request{}, "/new", StatusFound)

	status, header, body := w.Result()
	if status != StatusFound {
		t.Errorf("status = %d, want %d", status, StatusFound)
	}
	if got := header.Get("Location"); got != "/new" {
		t.Errorf("Location = %q, want /new", got)
	}
	if !strings.Contains(string(body), "/new") {
		t.Errorf("body should reference the redirect target, got %q", body)
	}
}

func TestRedirectNoContentStatusHasNoBody(t *testing.T) {
	w := NewBufferedResponseWriter()
	Redirect(w, &Request{}, "/new", StatusNotModified)

	_, _, body := w.Result()
	if len(body) != 0 {
		t.Errorf("body = %q, want empty for a status with no allowed body", body)
	}
}

func TestHandlerFuncAdapter(t *testing.T) {
	called := false
	var h Handler = HandlerFunc(func(w ResponseWriter, r *Request) { called = true })
	h.ServeHTTP(NewBufferedResponseWriter(), &Request{})
	if !called {
		t.Error("HandlerFunc.ServeHTTP should invoke the wrapped function")
	}
}
