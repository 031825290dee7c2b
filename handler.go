/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "github.com/sammyne/go-net/hdr"

type (
	// A Handler responds to an HTTP request.
	//
	// ServeHTTP should write reply headers and data to the ResponseWriter
	// and then return. Returning signals that the request is finished; it
	// is not valid to use the ResponseWriter or read from the Request.Body
	// after or concurrently with the completion of the ServeHTTP call.
	//
	// Except for reading the body, handlers should not modify the
	// provided Request.
	Handler interface {
		ServeHTTP(ResponseWriter, *Request)
	}

	// The HandlerFunc type is an adapter to allow the use of ordinary
	// functions as HTTP handlers. If f is a function with the appropriate
	// signature, HandlerFunc(f) is a Handler that calls f.
	HandlerFunc func(ResponseWriter, *Request)

	// A ResponseWriter interface is used by an HTTP handler to construct
	// an HTTP response.
	//
	// A ResponseWriter may not be used after the Handler.ServeHTTP method
	// has returned.
	ResponseWriter interface {
		// Header returns the header map that will be sent with the
		// response. Changing the header map after the first call to
		// Write has no effect.
		Header() hdr.Header

		// Write writes the data to the connection as part of an HTTP
		// reply.
		//
		// If WriteHeader has not yet been called, Write calls
		// WriteHeader(StatusOK) before writing the data. If the Header
		// does not contain a Content-Type line, Write adds a Content-Type
		// set to the result of passing the initial bytes of written data
		// to DetectContentType.
		Write([]byte) (int, error)

		// WriteHeader sends an HTTP response header with status code. If
		// WriteHeader is not called explicitly, the first call to Write
		// will trigger an implicit WriteHeader(StatusOK). Thus explicit
		// calls to WriteHeader are mainly used to send error codes.
		WriteHeader(statusCode int)
	}

	// The Flusher interface is implemented by ResponseWriters that allow
	// an HTTP handler to flush buffered data to the client.
	Flusher interface {
		// Flush sends any buffered data to the client.
		Flush()
	}

	// responseState is the explicit three-state machine a response
	// progresses through: Fresh before any header or body byte has been
	// written, HeadersSet once WriteHeader has fixed the status code, and
	// Committed once the first body byte has gone out. Transitions only
	// move forward; WriteHeader and Header() are no-ops once Committed.
	responseState int
)

const (
	responseFresh responseState = iota
	responseHeadersSet
	responseCommitted
)

// ServeHTTP calls f(w, r).
func (f HandlerFunc) ServeHTTP(w ResponseWriter, r *Request) {
	f(w, r)
}

// NotFound replies to the request with an HTTP 404 not found error.
func NotFound(w ResponseWriter, r *Request) { Error(w, "404 page not found", StatusNotFound) }

// NotFoundHandler returns a simple request handler that replies to each
// request with a 404 page not found reply.
func NotFoundHandler() Handler { return HandlerFunc(NotFound) }

// Error replies to the request with the specified error message and HTTP
// code. It does not otherwise end the request; the caller should ensure no
// further writes are done to w.
// The error message should be plain text.
func Error(w ResponseWriter, error string, code int) {
	h := w.Header()
	h.Set(hdr.ContentType, "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(error + "\n"))
}

// Redirect replies to the request with a redirect to url, which may be a
// path relative to the request path.
func Redirect(w ResponseWriter, r *Request, url string, code int) {
	h := w.Header()
	h.Set("Location", url)
	if !bodyAllowedForStatus(code) {
		w.WriteHeader(code)
		return
	}
	h.Set(hdr.ContentType, "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte("<a href=\"" + htmlEscape(url) + "\">" + StatusText(code) + "</a>.\n"))
}

func htmlEscape(s string) string {
	var buf []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			buf = append(buf, "&amp;"...)
		case '<':
			buf = append(buf, "&lt;"...)
		case '>':
			buf = append(buf, "&gt;"...)
		case '"':
			buf = append(buf, "&#34;"...)
		case '\'':
			buf = append(buf, "&#39;"...)
		default:
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// bodyAllowedForStatus reports whether a given response status code
// permits a body.
func bodyAllowedForStatus(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == StatusNoContent:
		return false
	case status == StatusNotModified:
		return false
	}
	return true
}
