/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "io"

// Response is a typed container over a client's received status code and
// its body stream. It deliberately omits the teacher's Header, TLS,
// Request back-reference, and TransferEncoding fields: this module does
// not implement the wire codec that would populate them.
type Response struct {
	Status int
	Body   io.ReadCloser
}
