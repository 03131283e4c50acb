package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Request describes one GET.
type Request struct {
	// Path is joined onto BaseURL unless it is already absolute.
	Path string

	Query map[string]string

	// Headers override the client defaults.
	Headers map[string]string

	Cookies []*http.Cookie
}

// Response is a fully read response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client fetches pages and documents, classifying every failure as *Error.
type Client struct {
	http   *http.Client
	config Config
}

// New creates a client. The transport is a clone of the default one, so
// Close only drops this client's idle connections.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		http: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.config }

// Close releases idle connections.
func (c *Client) Close() { c.http.CloseIdleConnections() }

// Get fetches path. A non-2xx status returns the response together with a
// classified *Error.
func (c *Client) Get(ctx context.Context, req Request) (*Response, error) {
	target := c.resolve(req.Path)
	where := withoutQuery(target)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Kind: KindRejected, URL: where, Err: unwrapURLError(err)}
	}
	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	for _, cookie := range req.Cookies {
		httpReq.AddCookie(cookie)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, transportError(ctx, where, err)
	}
	defer func() { _ = resp.Body.Close() }()

	limit := c.config.MaxResponseBytes
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, transportError(ctx, where, fmt.Errorf("read body: %w", err))
	}
	if int64(len(body)) > limit {
		return nil, &Error{Kind: KindTooLarge, StatusCode: resp.StatusCode, URL: where,
			Err: fmt.Errorf("body exceeds %d bytes", limit)}
	}

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}
	if e := statusError(where, resp.StatusCode); e != nil {
		return out, e
	}
	return out, nil
}

func (c *Client) resolve(path string) string {
	if c.config.BaseURL == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// withoutQuery drops the query and fragment so signed parameters never end up
// in error messages.
func withoutQuery(target string) string {
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		return target[:i]
	}
	return target
}
