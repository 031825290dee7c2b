/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mux

import (
	"sync"

	. "github.com/sammyne/go-net"
)

type (
	// ServeMux is an HTTP request multiplexer.
	// It matches the URL of each incoming request against a list of registered
	// patterns and calls the handler for the pattern that
	// most closely matches the URL.
	//
	// Patterns name fixed, rooted paths, like "/favicon.ico",
	// or rooted subtrees, like "/images/" (note the trailing slash).
	// Longer patterns take precedence over shorter ones, so that
	// if there are handlers registered for both "/images/"
	// and "/images/thumbnails/", the latter handler will be
	// called for paths beginning "/images/thumbnails/" and the
	// former will receive requests for any other paths in the
	// "/images/" subtree.
	//
	// Note that since a pattern ending in a slash names a rooted subtree,
	// the pattern "/" matches all paths not matched by other registered
	// patterns, not just the URL with Path == "/".
	//
	// Patterns are fixed strings: no wildcards, no regex, no host
	// component.
	ServeMux struct {
		mu sync.RWMutex
		m  map[string]muxEntry
		es []muxEntry // slice of entries sorted from longest to shortest pattern
	}

	muxEntry struct {
		h       Handler
		pattern string
	}
)

// DefaultServeMux is the default ServeMux used by Serve.
var DefaultServeMux = &defaultServeMux

var defaultServeMux ServeMux
