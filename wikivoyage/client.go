// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

// Package wikivoyage fetches article source from the Wikivoyage MediaWiki
// API.
package wikivoyage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/jorgemira/wikivoyage2kml/utils/httputils"
)

// ErrPageMissing is returned when the destination has no article in the
// selected language edition.
var ErrPageMissing = errors.New("page does not exist")

const apiURLFormat = "https://%s.wikivoyage.org/w/api.php"

// ClientOptions configures the article fetch client.
type ClientOptions struct {
	// Language selects the Wikivoyage edition, e.g. "en". Defaults to "en".
	Language string

	// UserAgent is the User-Agent header to use in API requests.
	UserAgent string

	// BaseURL overrides the API endpoint; primarily for tests.
	BaseURL string

	// Enables light tracing of HTTP requests and responses.
	EnableHTTPTrace bool

	// Enables full HTTP body tracing.
	EnableHTTPBodyTrace bool
}

// Client queries one Wikivoyage language edition.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new article fetch client with the provided options.
func NewClient(opts *ClientOptions) *Client {
	if opts == nil {
		opts = &ClientOptions{}
	}

	language := opts.Language
	if language == "" {
		language = "en"
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf(apiURLFormat, language)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "wikivoyage2kml/unknown"
	}

	var traceWriter io.Writer
	if opts.EnableHTTPTrace {
		traceWriter = os.Stderr
	}

	transport := &http.Transport{
		MaxIdleConns:          4,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &httputils.AppendRequestHeadersRoundTripper{
				Headers: map[string]string{
					"User-Agent": userAgent,
					"Accept":     "application/json",
				},
				Transport: &httputils.LoggingRoundTripper{
					Writer:    traceWriter,
					DumpBody:  opts.EnableHTTPBodyTrace,
					Transport: transport,
				},
			},
		},
	}
}

// The slice of the MediaWiki action API response we read. Revision content
// arrives under the legacy "*" key.
type revisionsResponse struct {
	Query struct {
		Pages map[string]struct {
			Missing   *string `json:"missing"`
			Revisions []struct {
				Content string `json:"*"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

// Article fetches the current wikitext of the destination's article.
// A missing page is reported as ErrPageMissing; transport failures come
// back wrapped. Both are fatal to a run and happen before any marker
// processing starts.
func (c *Client) Article(ctx context.Context, destination string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", destination)
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building API request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiki API returned status %d", resp.StatusCode)
	}

	var payload revisionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding API response: %w", err)
	}

	// The API keys the single page we asked for by its page id.
	for _, page := range payload.Query.Pages {
		if page.Missing != nil {
			return "", fmt.Errorf("%w: %q", ErrPageMissing, destination)
		}

		if len(page.Revisions) == 0 {
			return "", fmt.Errorf("no revisions available for %q", destination)
		}

		return page.Revisions[0].Content, nil
	}

	return "", fmt.Errorf("%w: %q", ErrPageMissing, destination)
}
