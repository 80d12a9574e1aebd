// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

// Package wikitext scans wiki markup for template invocations.
package wikitext

import (
	"iter"
	"strconv"
	"strings"
)

// Field is one argument of a template invocation. Positional arguments get
// 1-based decimal keys, the naming wiki engines use for unnamed parameters.
type Field struct {
	Key   string
	Value string
}

// Template is a single {{...}} block as it appears in the source text,
// before any semantic interpretation. Keys and values are raw: trimming and
// unescaping are left to the consumer.
type Template struct {
	Name   string
	Fields []Field
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Scan yields every template invocation found in the article body, in
// document order. The sequence is lazy and single-use. Travel-guide prose
// is full of encoding irregularities, so the scanner never fails: a block
// it cannot make sense of is skipped and scanning resumes at the next
// plausible boundary.
func Scan(body string) iter.Seq[Template] {
	return func(yield func(Template) bool) {
		rest := body

		for {
			start := strings.Index(rest, openDelim)
			if start < 0 {
				return
			}

			rest = rest[start+len(openDelim):]

			end := strings.Index(rest, closeDelim)
			if end < 0 {
				// Unterminated block and no later boundary to resync to.
				return
			}

			// Nested constructs are not interpreted. An opening delimiter
			// before the close means the outer block is malformed for our
			// purposes, so resynchronize on the inner one.
			if inner := strings.Index(rest[:end], openDelim); inner >= 0 {
				rest = rest[inner:]

				continue
			}

			raw := rest[:end]
			rest = rest[end+len(closeDelim):]

			t, ok := parseTemplate(raw)
			if !ok {
				continue
			}

			if !yield(t) {
				return
			}
		}
	}
}

// Splits the inside of a {{...}} block into its name and fields.
func parseTemplate(raw string) (Template, bool) {
	parts := strings.Split(raw, "|")

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Template{}, false
	}

	t := Template{Name: name}

	pos := 0

	for _, part := range parts[1:] {
		key, value, found := strings.Cut(part, "=")
		if !found {
			pos++
			t.Fields = append(t.Fields, Field{Key: strconv.Itoa(pos), Value: part})

			continue
		}

		t.Fields = append(t.Fields, Field{Key: key, Value: value})
	}

	return t, true
}
