/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/sammyne/go-net/hdr"
)

// Listener is the inbound half of the transport collaborator: it binds
// to an address, reads request-lines and header blocks off the wire,
// and for each one calls Server.Dispatch (never constructing a
// *Request itself) until the context is canceled. This package
// supplies no concrete implementation; TCP listening, TLS termination,
// and the HTTP/1.1 or HTTP/2 wire codec are out of scope here.
type Listener interface {
	ListenAndServe(ctx context.Context, addr string, h Handler) error
}

// Server describes how a Handler should be served: the address to bind,
// the Handler to dispatch to, and the collaborator that actually does
// the binding and wire I/O. Fields mirror the teacher's Server struct,
// trimmed to what makes sense without an implemented wire codec or TLS:
// ReadTimeout/WriteTimeout/IdleTimeout/MaxHeaderBytes/ConnState all
// belong to that excluded wire codec and are left to the Listener
// collaborator to interpret as it sees fit.
type Server struct {
	Addr    string
	Handler Handler

	// ErrorLog specifies an optional logger for errors accepting
	// connections and unexpected behavior from handlers. If nil,
	// logging is done via the log package's standard logger.
	ErrorLog *log.Logger

	// Listener is the transport collaborator that performs the actual
	// bind and serve loop. It must be set before calling ListenAndServe.
	Listener Listener
}

// logf writes to srv.ErrorLog, or to the standard logger if nil.
func (srv *Server) logf(format string, args ...interface{}) {
	if srv.ErrorLog != nil {
		srv.ErrorLog.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// handler returns the Handler to dispatch requests to: srv.Handler, or
// NotFoundHandler() when srv.Handler is nil. This package does not
// depend on the mux package (to avoid an import cycle, since mux
// depends on the root package's Handler/ResponseWriter/Request types),
// so it is the embedder's responsibility to set Server.Handler to
// mux.DefaultServeMux (or an explicit *mux.ServeMux) when a mux-backed
// Server is wanted.
func (srv *Server) handler() Handler {
	if srv.Handler == nil {
		return NotFoundHandler()
	}
	return srv.Handler
}

// ListenAndServe binds to srv.Addr (falling back to ":http" when empty)
// and serves incoming requests with srv.handler(), delegating the
// actual accept loop and wire I/O to srv.Listener.
func (srv *Server) ListenAndServe(ctx context.Context) error {
	if srv.Listener == nil {
		return ErrNoListener
	}
	addr := srv.Addr
	if addr == "" {
		addr = ":http"
	}
	return srv.Listener.ListenAndServe(ctx, addr, srv.handler())
}

// Dispatch builds an inbound Request from wire primitives via
// NewServerRequest and serves it with srv.handler(). A Listener
// implementation calls Dispatch instead of constructing *Request
// itself, keeping request-target parsing and Host extraction this
// package's own responsibility rather than the transport
// collaborator's.
func (srv *Server) Dispatch(w ResponseWriter, method, requestURI string, header hdr.Header, body io.ReadCloser, remoteAddr string) error {
	req, err := NewServerRequest(method, requestURI, header, body, remoteAddr)
	if err != nil {
		return err
	}
	srv.handler().ServeHTTP(w, req)
	return nil
}

// ErrNoListener is returned by Server.ListenAndServe when no transport
// collaborator has been configured.
var ErrNoListener = errors.New("http: Server.Listener is nil")
