/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/sammyne/go-net/hdr"
	"github.com/sammyne/go-net/url"
)

// Request is a typed container over an HTTP method, its target URL,
// protocol version, headers, a single-producer body stream, and the
// request's origin, kept deliberately lean: no multipart form, no TLS
// state, no per-request trailer or GetBody, all of which belong to the
// wire codec this package does not implement.
type Request struct {
	Method        string
	URL           *url.URL
	Proto         string
	Header        hdr.Header
	Body          io.ReadCloser
	ContentLength int64
	Host          string
	RemoteAddr    string

	ctx context.Context
}

// NewRequest builds a Request for outgoing use by a Client. The body, if
// non-nil, is consumed at most once by whatever transport collaborator
// eventually serializes the request.
func NewRequest(method, rawurl string, body io.ReadCloser) (*Request, error) {
	if method == "" {
		method = "GET"
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, err
	}
	if body == nil {
		body = ioutil.NopCloser(bytes.NewReader(nil))
	}
	return &Request{
		Method: method,
		URL:    u,
		Proto:  "HTTP/1.1",
		Header: make(hdr.Header),
		Body:   body,
		Host:   u.Host,
		ctx:    context.Background(),
	}, nil
}

// NewServerRequest builds an inbound Request the way a transport
// collaborator would after reading a request-line and a header block
// off the wire. requestURI is parsed with url.ParseRequestURI, not
// url.Parse, since a request-target is never a bare relative reference
// with a #fragment. The Host header, if present, is pulled out of and
// removed from header: the host belongs to the Request's Host field,
// not to the surviving header set a Handler sees via Request.Header.
func NewServerRequest(method, requestURI string, header hdr.Header, body io.ReadCloser, remoteAddr string) (*Request, error) {
	u, err := url.ParseRequestURI(requestURI)
	if err != nil {
		return nil, err
	}
	if header == nil {
		header = make(hdr.Header)
	}
	host := header.Get("Host")
	header.Del("Host")
	if host == "" {
		host = u.Host
	}
	if body == nil {
		body = ioutil.NopCloser(bytes.NewReader(nil))
	}

	var contentLength int64
	if cl := header.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil {
			contentLength = n
		}
	}

	return &Request{
		Method:        method,
		URL:           u,
		Proto:         "HTTP/1.1",
		Header:        header,
		Body:          body,
		ContentLength: contentLength,
		Host:          host,
		RemoteAddr:    remoteAddr,
		ctx:           context.Background(),
	}, nil
}

// Context returns the request's context. It is never nil; a request
// created via NewRequest or NewServerRequest carries
// context.Background() until WithContext replaces it.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to
// ctx. The provided ctx must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic("net/http: nil Context")
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// RequestURI returns the request-target as it would appear in the
// Request-Line, built by URL.RequestURI from the escaped path (or opaque
// part) and query of URL; the fragment is not included.
func (r *Request) RequestURI() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.RequestURI()
}
