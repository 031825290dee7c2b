/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"

	"github.com/sammyne/go-net/hdr"
)

// sniffLen is the maximum number of bytes of the first Write passed to
// DetectContentType when the Content-Type is sniffed.
const sniffLen = 512

// BufferedResponseWriter is a minimal, in-memory ResponseWriter: it
// implements the Fresh -> HeadersSet -> Committed state machine against a
// bytes.Buffer instead of a live connection, since this package has no
// transport collaborator of its own. A Listener implementation adapts it
// (or its own equivalent) to the wire.
type BufferedResponseWriter struct {
	header    hdr.Header
	committed hdr.Header // non-nil once the response has committed; a frozen snapshot of header
	body      bytes.Buffer
	status    int
	state     responseState
}

// NewBufferedResponseWriter returns a ResponseWriter ready for a single
// handler invocation.
func NewBufferedResponseWriter() *BufferedResponseWriter {
	return &BufferedResponseWriter{header: make(hdr.Header)}
}

// Header returns a mutable view of the header map that will be sent by
// WriteHeader. The view is valid only until the response commits (the
// first Write, or an explicit WriteHeader followed by Write); once
// committed, Header returns a throwaway copy, so callers that keep
// mutating the map they hold have no effect on what was already sent,
// matching net/http's documented behavior for writing headers after a
// response has started.
func (w *BufferedResponseWriter) Header() hdr.Header {
	if w.committed != nil {
		return w.committed.Clone()
	}
	return w.header
}

// WriteHeader fixes the status code. A second call, or a call after the
// response has been committed, is a no-op, matching net/http's documented
// "superfluous WriteHeader call" behavior.
func (w *BufferedResponseWriter) WriteHeader(code int) {
	if w.state != responseFresh {
		return
	}
	w.status = code
	w.state = responseHeadersSet
}

// Write appends p to the response body, implicitly calling
// WriteHeader(StatusOK) if the handler hasn't yet, and sniffing a
// Content-Type from the first bytes written if the handler didn't set
// one explicitly. The first call to Write commits the response: the
// header map is frozen into a snapshot, and subsequent mutation of
// whatever map Header() previously returned has no effect on Result.
func (w *BufferedResponseWriter) Write(p []byte) (int, error) {
	if w.state == responseFresh {
		w.WriteHeader(StatusOK)
	}
	if w.committed == nil {
		if w.header.Get(hdr.ContentType) == "" && w.body.Len() < sniffLen {
			sniffed := p
			if room := sniffLen - w.body.Len(); len(sniffed) > room {
				sniffed = sniffed[:room]
			}
			w.header.Set(hdr.ContentType, DetectContentType(append(w.body.Bytes(), sniffed...)))
		}
		w.committed = w.header.Clone()
		w.state = responseCommitted
	}
	return w.body.Write(p)
}

// Result returns the status code (defaulting to StatusOK if the handler
// never called WriteHeader or Write), the finalized header as it stood
// at the moment the response committed, and the accumulated body, for a
// transport collaborator to serialize.
func (w *BufferedResponseWriter) Result() (status int, header hdr.Header, body []byte) {
	status = w.status
	if status == 0 {
		status = StatusOK
	}
	if w.committed != nil {
		return status, w.committed, w.body.Bytes()
	}
	return status, w.header, w.body.Bytes()
}
