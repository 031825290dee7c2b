/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "bytes"

// DetectContentType implements the algorithm described at
// https://mimesniff.spec.whatwg.org/ to determine the Content-Type of the
// given data. It considers at most the first 512 bytes of data. It always
// returns a valid MIME type: if it cannot determine a more specific one, it
// returns "application/octet-stream".
func DetectContentType(data []byte) string {
	const sniffLen = 512
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	firstNonWS := 0
	for ; firstNonWS < len(data) && isWS(data[firstNonWS]); firstNonWS++ {
	}

	for _, sig := range sniffSignatures {
		if ct := sig.match(data, firstNonWS); ct != "" {
			return ct
		}
	}

	return "application/octet-stream"
}

// isWS reports whether the provided byte is a whitespace byte (0xWS) per
// the mimesniff spec.
func isWS(b byte) bool {
	switch b {
	case '\t', '\n', '\x0c', '\r', ' ':
		return true
	}
	return false
}

type sniffSig interface {
	// match returns the MIME type of the data, or "" if unknown.
	match(data []byte, firstNonWS int) string
}

// exactSig matches data against a fixed byte signature.
type exactSig struct {
	sig []byte
	ct  string
}

func (e *exactSig) match(data []byte, firstNonWS int) string {
	if len(data) >= len(e.sig) && bytes.Equal(data[:len(e.sig)], e.sig) {
		return e.ct
	}
	return ""
}

// maskedSig matches data against a signature under a byte mask, skipping
// leading whitespace when skipWS is set. Used for signatures whose
// recognized form allows a variable run of whitespace or differs only in
// case, such as "<html" vs "<HTML".
type maskedSig struct {
	mask, pat []byte
	skipWS    bool
	ct        string
}

func (m *maskedSig) match(data []byte, firstNonWS int) string {
	if m.skipWS {
		data = data[firstNonWS:]
	}
	if len(data) < len(m.mask) {
		return ""
	}
	for i, mask := range m.mask {
		db := data[i] & mask
		if db != m.pat[i] {
			return ""
		}
	}
	return m.ct
}

// textSig matches any data that looks like text, per the mimesniff spec's
// notion of a "binary data byte".
type textSig struct{}

func (textSig) match(data []byte, firstNonWS int) string {
	for _, b := range data[firstNonWS:] {
		switch {
		case b <= 0x08,
			b == 0x0B,
			0x0E <= b && b <= 0x1A,
			0x1C <= b && b <= 0x1F:
			return ""
		}
	}
	return "text/plain; charset=utf-8"
}

// sniffSignatures is the bounded signature table consulted in order;
// the first match wins. It covers the common cases a handler is likely to
// hit without attempting the full mimesniff table.
var sniffSignatures = []sniffSig{
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\xFF"),
		pat:  []byte("<?xml"),
		skipWS: true,
		ct:     "text/xml; charset=utf-8",
	},
	&maskedSig{
		mask:   []byte("\xFF\xDF\xDF\xDF\xDF"),
		pat:    []byte("<HTML"),
		skipWS: true,
		ct:     "text/html; charset=utf-8",
	},
	&exactSig{sig: []byte("%PDF-"), ct: "application/pdf"},
	&exactSig{sig: []byte("%!PS-Adobe-"), ct: "application/postscript"},
	&exactSig{sig: []byte("GIF87a"), ct: "image/gif"},
	&exactSig{sig: []byte("GIF89a"), ct: "image/gif"},
	&exactSig{sig: []byte("\x89PNG\x0D\x0A\x1A\x0A"), ct: "image/png"},
	&exactSig{sig: []byte("\xFF\xD8\xFF"), ct: "image/jpeg"},
	&exactSig{sig: []byte("BM"), ct: "image/bmp"},
	&exactSig{sig: []byte("\x00\x00\x01\x00"), ct: "image/x-icon"},
	&exactSig{sig: []byte("\x1A\x45\xDF\xA3"), ct: "video/webm"},
	&exactSig{sig: []byte("\x1F\x8B\x08"), ct: "application/x-gzip"},
	&exactSig{sig: []byte("PK\x03\x04"), ct: "application/zip"},
	textSig{}, // should be last
}
