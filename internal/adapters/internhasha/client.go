// Package internhasha is the HTTP client for the internship postings REST API.
// One attempt per call, no retry; the bearer token is read from the injected
// session on every request.
package internhasha

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"internhasha/internal/platform/config"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
	pnet "internhasha/internal/platform/net"
	"internhasha/internal/session"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	baseURLDefault = "https://api-internhasha.wafflestudio.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "internhasha-cli"
	defaultMaxBody = 4 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Rate is requests per second; 0 disables client-side limiting
	Rate  float64
	Burst int

	// MaxBody caps how much of a response body is read
	MaxBody int64

	// HTTPClient overrides the transport (tests)
	HTTPClient *http.Client
}

// OptionsFromEnv reads API_* keys under cfg
func OptionsFromEnv(cfg config.Conf) Options {
	c := cfg.Prefix("API_")
	return Options{
		BaseURL:   c.MayURL("BASE_URL", baseURLDefault),
		UserAgent: c.MayString("USER_AGENT", defaultUA),
		Timeout:   c.MayDuration("TIMEOUT", defaultTimeout),
		Rate:      c.MayFloat64("RATE", 0),
		Burst:     c.MayInt("BURST", 1),
		MaxBody:   int64(c.MayInt("MAX_BODY", defaultMaxBody)),
	}
}

// Client talks to the REST API
type Client struct {
	http    *http.Client
	opts    Options
	tokens  session.TokenSource
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
}

// NewClient creates a Client with sane defaults. tokens may be nil for an
// always-anonymous client.
func NewClient(o Options, tokens session.TokenSource) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBody <= 0 {
		o.MaxBody = defaultMaxBody
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	var lim *rate.Limiter
	if o.Rate > 0 {
		lim = rate.NewLimiter(rate.Limit(o.Rate), max(o.Burst, 1))
	}
	return &Client{
		http:    hc,
		opts:    o,
		tokens:  tokens,
		limiter: lim,
		log:     *logger.Named("internhasha"),
		now:     time.Now,
	}
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// RequestOptions describes one call. Body, when non-nil, is JSON encoded.
type RequestOptions struct {
	Method string
	Body   any
	Header http.Header
}

// Response is a classified response. JSON holds the decoded payload when the
// declared content type is JSON (nil if it failed to parse); Text holds the
// body otherwise.
type Response struct {
	Status      int
	Header      http.Header
	ContentType string
	IsJSON      bool
	JSON        any
	Text        string
	Raw         []byte
}

// Object returns the payload when it is a JSON object, else nil
func (r *Response) Object() map[string]any {
	if r == nil {
		return nil
	}
	obj, _ := r.JSON.(map[string]any)
	return obj
}

// Decode fills v from the payload one top-level field at a time. A body that
// did not parse, or is not an object, leaves v untouched; a field of the wrong
// type is skipped. It returns the skipped keys.
func (r *Response) Decode(v any) (skipped []string) {
	for k, val := range r.Object() {
		b, err := json.Marshal(map[string]any{k: val})
		if err == nil {
			err = json.Unmarshal(b, v)
		}
		if err != nil {
			skipped = append(skipped, k)
		}
	}
	return skipped
}

// Request performs one call against path (relative to the base URL).
// Non-2xx yields *StatusError; a canceled ctx yields an aborted error; anything
// failing before a response is a *TransportError.
func (c *Client) Request(ctx context.Context, path string, o RequestOptions) (*Response, error) {
	method := o.Method
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() == nil {
				// the wait alone would outlive the deadline; nothing was sent
				return nil, perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "%s %s rate limited", method, path)
			}
			return nil, c.failure(ctx, method, path, err)
		}
	}

	var body io.Reader
	if o.Body != nil {
		b, err := json.Marshal(o.Body)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "encode %s %s body", method, path)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if o.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range o.Header {
		req.Header.Del(k)
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	reqID := pnet.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", reqID)
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			c.log.Warn().Err(err).Msg("session read failed, sending anonymous request")
		} else if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.failure(ctx, method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("close body failed")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBody+1))
	if err != nil {
		return nil, c.failure(ctx, method, path, err)
	}
	if int64(len(raw)) > c.opts.MaxBody {
		c.log.Warn().Str("method", method).Str("path", path).Int64("max_body", c.opts.MaxBody).Msg("api response too large")
		return nil, perr.Newf(perr.ErrorCodeUpstream, "%s %s response exceeds %d bytes", method, path, c.opts.MaxBody)
	}

	out := classify(resp, raw)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Int("status", out.Status).
		Bool("json", out.IsJSON).
		Dur("latency", c.now().Sub(start)).
		Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, newStatusError(out)
	}
	return out, nil
}

// failure maps a pre-response error to aborted or transport
func (c *Client) failure(ctx context.Context, method, path string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.log.Debug().Str("method", method).Str("path", path).Msg("api request aborted")
		return perr.Wrapf(ctxErr, perr.ErrorCodeCanceled, "%s %s aborted", method, path)
	}
	c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("api transport failure")
	return &TransportError{
		Method: method,
		Path:   path,
		Err:    perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s %s transport failed", method, path),
	}
}

func classify(resp *http.Response, raw []byte) *Response {
	ct := resp.Header.Get("Content-Type")
	out := &Response{
		Status:      resp.StatusCode,
		Header:      resp.Header,
		ContentType: ct,
		IsJSON:      isJSONType(ct),
		Raw:         raw,
	}
	if !out.IsJSON {
		out.Text = string(raw)
		return out
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err == nil {
		out.JSON = v
	}
	return out
}

func isJSONType(ct string) bool {
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.Contains(strings.ToLower(ct), "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
