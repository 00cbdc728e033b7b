package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/acmchapter/chapterdesk/internal/common"
	"github.com/acmchapter/chapterdesk/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource yields the current auth token, or "" when logged out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// Options configure a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is requests per second; 0 disables limiting.
	RateLimit float64
	Tokens    TokenSource
	Logger    logging.Logger
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	log     logging.Logger
}

func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = TokenFunc(func(context.Context) (string, error) { return "", nil })
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	c := &Client{baseURL: base, http: hc, tokens: tokens, log: log}
	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}
	return c, nil
}

// Request describes one API call. Path is relative to the base URL, already
// escaped, and keeps its trailing slash as written. At most one of JSON and Form is set.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	JSON   any
	Form   *Form
	// Header adds or overrides headers, e.g. an explicit Authorization.
	Header http.Header
}

// Download is a binary response body with its metadata.
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Do performs req and decodes a JSON response into out (when non-nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	body, _, err := c.roundTrip(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.Path, err)
	}
	return nil
}

// Download performs req and returns the raw body. The file name comes from
// Content-Disposition when present, else fallback.
func (c *Client) Download(ctx context.Context, req Request, fallback string) (*Download, error) {
	body, header, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	name := fallback
	if n := FilenameFromDisposition(header.Get("Content-Disposition")); n != "" {
		name = n
	}
	return &Download{Filename: name, ContentType: header.Get("Content-Type"), Body: body}, nil
}

func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, http.Header, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
		}
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	requestID := httpReq.Header.Get(common.RequestIDHeader)
	log := c.log.With("method", req.Method, "path", req.Path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "duration", time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, ctxErr)
		}
		return nil, nil, fmt.Errorf("%s %s: %w: %v", req.Method, req.Path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: read body: %w: %v", req.Method, req.Path, ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start), "bytes", len(body))

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, nil, newError(resp.StatusCode, body)
	}
	return body, resp.Header, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := c.resolve(req.Path, req.Query)

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		b, ct, err := req.Form.encode()
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode form: %w", req.Method, req.Path, err)
		}
		body, contentType = b, ct
	case req.JSON != nil:
		b, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", req.Method, req.Path, err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set(common.RequestIDHeader, uuid.NewString())

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeader, common.TokenScheme+" "+token)
	}

	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	return httpReq, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	raw := strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	if p, err := url.PathUnescape(raw); err == nil {
		u.Path, u.RawPath = p, raw
	} else {
		u.Path, u.RawPath = raw, ""
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// FilenameFromDisposition extracts the file name from a Content-Disposition
// header, preferring the RFC 5987 filename* form. Returns "" when absent.
func FilenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	// Lenient fallback for headers mime rejects, e.g. unquoted names with spaces.
	idx := strings.Index(strings.ToLower(header), "filename")
	if idx < 0 {
		return ""
	}
	rest := header[idx+len("filename"):]
	rest = strings.TrimPrefix(rest, "*")
	rest = strings.TrimLeft(rest, " =")
	if i := strings.Index(strings.ToLower(rest), "utf-8''"); i == 0 {
		rest = rest[len("utf-8''"):]
	}
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.Trim(strings.TrimSpace(rest), `"'`)
	if dec, err := url.PathUnescape(rest); err == nil {
		return dec
	}
	return rest
}

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
