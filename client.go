/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "fmt"

// RoundTripper is the transport collaborator: it executes a single HTTP
// request and returns the corresponding response. A RoundTripper should
// not mutate the request, and must close the request body. This package
// supplies no concrete implementation; embedding programs wire in
// whatever executes the actual wire codec, TLS handshake, and connection
// pooling, all of which are out of scope here.
type RoundTripper interface {
	RoundTrip(*Request) (*Response, error)
}

// Client is an HTTP client bound to a RoundTripper. Its zero value has a
// nil Transport, in which case Do returns an error rather than silently
// falling back to some default collaborator.
type Client struct {
	Transport RoundTripper
}

// DefaultClient is the default Client, consulted by the package-level
// Get and Do helpers. Its Transport starts out nil; an embedding program
// must assign one before making requests.
var DefaultClient = &Client{}

// Do sends an HTTP request and returns an HTTP response, delegating the
// actual wire exchange to c.Transport.
func (c *Client) Do(req *Request) (*Response, error) {
	if c.Transport == nil {
		return nil, fmt.Errorf("net/http: no Transport configured for Client")
	}
	return c.Transport.RoundTrip(req)
}

// Get issues a GET to the specified URL.
func (c *Client) Get(url string) (*Response, error) {
	req, err := NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Get issues a GET to the specified URL through DefaultClient.
func Get(url string) (*Response, error) {
	return DefaultClient.Get(url)
}

// Do sends an HTTP request through DefaultClient.
func Do(req *Request) (*Response, error) {
	return DefaultClient.Do(req)
}
