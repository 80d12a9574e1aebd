// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package wikivoyage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "query" || q.Get("titles") != "Prague" {
			t.Errorf("unexpected query: %v", q)
		}

		if q.Get("prop") != "revisions" || q.Get("rvprop") != "content" {
			t.Errorf("missing revision parameters: %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": {
				"pages": {
					"42": {
						"pageid": 42,
						"title": "Prague",
						"revisions": [{"*": "{{see|name=Old Town|long=14.4|lat=50.08}}"}]
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientOptions{BaseURL: srv.URL})

	body, err := c.Article(context.Background(), "Prague")
	if err != nil {
		t.Fatalf("Article() error: %v", err)
	}

	want := "{{see|name=Old Town|long=14.4|lat=50.08}}"
	if body != want {
		t.Fatalf("Article() = %q, want %q", body, want)
	}
}

func TestArticleMissingPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": {
				"pages": {
					"-1": {"title": "Nowhereville", "missing": ""}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientOptions{BaseURL: srv.URL})

	_, err := c.Article(context.Background(), "Nowhereville")
	if !errors.Is(err, ErrPageMissing) {
		t.Fatalf("Article() error = %v, want ErrPageMissing", err)
	}
}

func TestArticleServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(&ClientOptions{BaseURL: srv.URL})

	_, err := c.Article(context.Background(), "Prague")
	if err == nil {
		t.Fatal("Article() expected an error")
	}

	if errors.Is(err, ErrPageMissing) {
		t.Fatal("a server error must not look like a missing page")
	}
}

func TestArticleEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query": {"pages": {}}}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientOptions{BaseURL: srv.URL})

	_, err := c.Article(context.Background(), "Prague")
	if !errors.Is(err, ErrPageMissing) {
		t.Fatalf("Article() error = %v, want ErrPageMissing", err)
	}
}
