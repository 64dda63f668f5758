package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response regardless of the request URL.
type stubClient struct {
	status int
	body   string
	err    error
}

func (s *stubClient) Do(req *http.Request) (*http.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func TestFetchCSVOK(t *testing.T) {
	c := New(&stubClient{status: 200, body: "Date,Campaign,Count\n2024-01-05,A,100\n"}, "sheet-id", "Mailings")
	text, err := c.FetchCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Date,Campaign,Count\n2024-01-05,A,100\n", text)
}

func TestFetchCSVNon2xx(t *testing.T) {
	c := New(&stubClient{status: 404, body: "not found"}, "sheet-id", "Mailings")
	_, err := c.FetchCSV(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 404, fe.Status)
	assert.Contains(t, fe.Message, "not found")
}

func TestFetchCSVMissingConfig(t *testing.T) {
	c := New(&stubClient{status: 200, body: "x"}, "", "")
	_, err := c.FetchCSV(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Status)
	assert.Contains(t, fe.Message, "not configured")
}

func TestURLEncodesTab(t *testing.T) {
	c := New(nil, "abc123", "Mail Log 2024")
	u := c.URL()
	assert.Contains(t, u, "abc123")
	assert.Contains(t, u, "sheet=Mail+Log+2024")
}

func TestHTTPClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cl := NewHTTPClient(50 * time.Millisecond)
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	_, err := cl.Do(req)
	assert.Error(t, err)
}
