/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestValuesEncodeSortsByKey(t *testing.T) {
	v := Values{
		"name":   {"Ava"},
		"friend": {"Jess", "Sarah", "Zoe"},
	}
	want := "friend=Jess&friend=Sarah&friend=Zoe&name=Ava"
	if got := v.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestValuesEncodeNil(t *testing.T) {
	var v Values
	if got := v.Encode(); got != "" {
		t.Errorf("Encode() on nil Values = %q, want empty", got)
	}
}

func TestParseQuery(t *testing.T) {
	m, err := ParseQuery("x=1&y=2&y=3;z")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	want := Values{
		"x": {"1"},
		"y": {"2", "3"},
		"z": {""},
	}
	if len(m) != len(want) {
		t.Fatalf("ParseQuery result has %d keys, want %d", len(m), len(want))
	}
	for k, vs := range want {
		got := m[k]
		if len(got) != len(vs) {
			t.Fatalf("key %q: got %v, want %v", k, got, vs)
		}
		for i := range vs {
			if got[i] != vs[i] {
				t.Errorf("key %q[%d] = %q, want %q", k, i, got[i], vs[i])
			}
		}
	}
}

func TestParseQueryBadEscapeContinues(t *testing.T) {
	m, err := ParseQuery("a=1&b=%zz&c=3")
	if err == nil {
		t.Error("ParseQuery with a malformed escape should return an error")
	}
	if m.Get("a") != "1" || m.Get("c") != "3" {
		t.Errorf("ParseQuery should keep decoding valid pairs after an error, got %v", m)
	}
}

func TestValuesGetSetAddDel(t *testing.T) {
	v := make(Values)
	v.Add("a", "1")
	v.Add("a", "2")
	if got := v.Get("a"); got != "1" {
		t.Errorf("Get returns first value, got %q", got)
	}
	v.Set("a", "3")
	if len(v["a"]) != 1 || v["a"][0] != "3" {
		t.Errorf("Set should replace existing values, got %v", v["a"])
	}
	v.Del("a")
	if _, ok := v["a"]; ok {
		t.Error("Del should remove the key")
	}
}
