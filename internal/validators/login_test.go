// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLogin(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		strict bool
		want   string
	}{
		{name: "plain login", raw: "alice", want: "alice"},
		{name: "trims and collapses whitespace", raw: "  John   Doe  ", want: "John Doe"},
		{name: "tabs and newlines collapse", raw: "a\tb\nc", want: "a b c"},
		{name: "strips tags", raw: "<b>bob</b>", want: "bob"},
		{name: "drops script body", raw: "<script>alert(1)</script>eve", want: "eve"},
		{name: "keeps lone angle bracket", raw: "5 < 6", want: "5 < 6"},
		{name: "folds accents", raw: "José", want: "Jose"},
		{name: "folds stacked accents", raw: "Ünïcödé", want: "Unicode"},
		{name: "expands ligatures", raw: "Straße", want: "Strasse"},
		{name: "removes octets", raw: "al%20ice", want: "alice"},
		{name: "removes entities", raw: "tom&amp;jerry", want: "tomjerry"},
		{name: "loose keeps punctuation", raw: "joe!", want: "joe!"},
		{name: "strict drops punctuation", raw: "joe!#", strict: true, want: "joe"},
		{name: "strict keeps allowed set", raw: "Jo.e_B-1@x y", strict: true, want: "Jo.e_B-1@x y"},
		{name: "strict drops non-latin", raw: "имя", strict: true, want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLogin(tt.raw, tt.strict))
		})
	}
}

func TestNewLoginSanitizer(t *testing.T) {
	assert.Equal(t, "joe", NewLoginSanitizer(true)(" joe! "))
	assert.Equal(t, "joe!", NewLoginSanitizer(false)(" joe! "))
}

func TestSanitizeLogin_Idempotent(t *testing.T) {
	for _, raw := range []string{"  Jöhn  <i>Doe</i> ", "a%41b&lt;c", "x y"} {
		once := SanitizeLogin(raw, false)
		assert.Equal(t, once, SanitizeLogin(once, false), raw)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		login string
		want  string
	}{
		{login: "alice", want: "alice"},
		{login: "Alice", want: "alice"},
		{login: "John Doe", want: "john-doe"},
		{login: "a b c", want: "a-b-c"},
		{login: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.login))
		})
	}
}
