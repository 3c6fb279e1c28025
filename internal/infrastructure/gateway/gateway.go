// Package gateway implements the HTTP client for the remote data service
// that owns all Cliente, Room and Reservation state. Every failure is
// converted into a typed domain.GatewayError so call sites branch on a
// closed set of outcomes instead of sniffing transport error shapes.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type ctxKey int

const cookieKey ctxKey = iota

// WithSessionCookies returns a context carrying the browser's session
// cookies. Every gateway call forwards them verbatim; no request-level
// token handling happens here.
func WithSessionCookies(ctx context.Context, cookieHeader string) context.Context {
	return context.WithValue(ctx, cookieKey, cookieHeader)
}

func sessionCookies(ctx context.Context) string {
	s, _ := ctx.Value(cookieKey).(string)
	return s
}

// Client is the shared transport for all gateway resources.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a gateway client. The timeout is the transport's own default;
// individual calls add nothing on top (failed calls are terminal, there is
// no retry).
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do performs one gateway round trip. A nil out skips body decoding (204s).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	resp, err := c.roundTrip(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if readErr != nil {
		return &domain.GatewayError{Kind: domain.KindTransport, Err: readErr}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &domain.GatewayError{Kind: domain.KindUnexpected, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		return &domain.GatewayError{
			Kind:    domain.KindValidation,
			Status:  resp.StatusCode,
			Message: validationMessage(body),
		}
	}

	c.log.Warn().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Msg("gateway returned unexpected status")

	return &domain.GatewayError{
		Kind:    domain.KindUnexpected,
		Status:  resp.StatusCode,
		Message: strings.TrimSpace(string(body)),
	}
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, in any) (*http.Response, error) {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, &domain.GatewayError{Kind: domain.KindTransport, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &domain.GatewayError{Kind: domain.KindTransport, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookies := sessionCookies(ctx); cookies != "" {
		req.Header.Set("Cookie", cookies)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{Kind: domain.KindTransport, Err: err}
	}
	return resp, nil
}

// Ping probes the gateway for the readiness check. Any HTTP response proves
// reachability; only transport failures count against readiness.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/Rooms", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func decodeJSON(resp *http.Response, out any) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// validationMessage extracts the user-facing text from a 400 body. The
// gateway answers either with a bare string, a JSON-encoded string, or a
// {"message": ...} envelope; whichever it is, the text is surfaced verbatim.
func validationMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	return trimmed
}
