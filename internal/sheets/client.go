// Package sheets fetches a shared spreadsheet tab as CSV text. The fetch
// is a single best-effort attempt: no retries anywhere in this system.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// FetchError carries the HTTP status (0 for config/transport failures)
// and a human-readable message across the network boundary.
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("sheet fetch failed (status %d): %s", e.Status, e.Message)
}

// Client fetches one configured spreadsheet tab.
type Client struct {
	c       HTTPClient
	sheetID string
	tab     string
}

func New(c HTTPClient, sheetID, tab string) *Client {
	return &Client{c: c, sheetID: sheetID, tab: tab}
}

// URL is the published CSV export endpoint for the configured tab.
func (c *Client) URL() string {
	return fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		url.PathEscape(c.sheetID), url.QueryEscape(c.tab),
	)
}

// FetchCSV returns the tab's current contents as CSV text, or a
// *FetchError when configuration is missing or the request fails.
func (c *Client) FetchCSV(ctx context.Context) (string, error) {
	if c.sheetID == "" || c.tab == "" {
		return "", &FetchError{Message: "sheet id or tab not configured"}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return "", &FetchError{Message: err.Error()}
	}
	resp, err := c.c.Do(req)
	if err != nil {
		return "", &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &FetchError{Status: resp.StatusCode, Message: string(b)}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Message: err.Error()}
	}
	return string(b), nil
}
