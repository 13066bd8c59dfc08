// Package binance issues signed REST calls against the USDT-M futures API.
package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/soumadipchangder/Trading-Bot/internal/metrics"
)

// DefaultBaseURL points at the futures testnet. Production trading must opt
// in through BINANCE_BASE_URL.
const DefaultBaseURL = "https://testnet.binancefuture.com"

const requestTimeout = 10 * time.Second

// Client signs and submits requests with a caller-supplied logger. It holds
// no globals, so tests can run several clients side by side.
type Client struct {
	apiKey    string
	apiSecret string
	baseURL   string
	http      *http.Client
	log       zerolog.Logger
}

// New builds a Client. An empty baseURL selects the testnet. Keys are
// trimmed because stray whitespace breaks signature generation.
func New(apiKey, apiSecret, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:    strings.TrimSpace(apiKey),
		apiSecret: strings.TrimSpace(apiSecret),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		http:      &http.Client{Timeout: requestTimeout},
		log:       log,
	}
}

// BaseURL reports the endpoint the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// sign computes the hex-encoded HMAC-SHA256 of the encoded query string.
func (c *Client) sign(query string) string {
	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// Get issues a signed GET request. params gains timestamp and signature.
func (c *Client) Get(ctx context.Context, path string, params *Params) *Response {
	return c.do(ctx, http.MethodGet, path, params)
}

// Post issues a signed POST request. Binance reads order parameters from the
// query string, so the body stays empty.
func (c *Client) Post(ctx context.Context, path string, params *Params) *Response {
	return c.do(ctx, http.MethodPost, path, params)
}

func (c *Client) do(ctx context.Context, method, path string, params *Params) *Response {
	if params == nil {
		params = NewParams()
	}
	// The signature covers every preceding parameter, timestamp included,
	// and must come last in the query string.
	params.SetInt("timestamp", time.Now().UnixMilli())
	query := params.Encode()
	params.Set("signature", c.sign(query))

	c.log.Info().Str("method", method).Str("path", path).Str("params", query).Msg("request")

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("create request")
		metrics.RequestsTotal.WithLabelValues(method, path, "error").Inc()
		return errorResponse(err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("X-MBX-APIKEY", c.apiKey)
	req.Header.Set("User-Agent", "trading-bot/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("request failed")
		metrics.RequestsTotal.WithLabelValues(method, path, "error").Inc()
		return errorResponse(err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("read response")
		return errorResponse(fmt.Errorf("read response: %w", err))
	}
	if !json.Valid(body) {
		err := fmt.Errorf("decode response: invalid JSON (%d bytes)", len(body))
		c.log.Error().Err(err).Str("path", path).Int("status", resp.StatusCode).Msg("bad response body")
		return errorResponse(err)
	}

	r := &Response{body: body}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		event := c.log.Error().Str("path", path).Int("status", resp.StatusCode)
		if code, msg, ok := r.APIError(); ok {
			event = event.Int64("code", code).Str("msg", msg)
		} else {
			event = event.RawJSON("body", body)
		}
		event.Msg("request rejected")
		return r
	}
	c.log.Info().Str("path", path).Int("status", resp.StatusCode).RawJSON("body", body).Msg("response")
	return r
}
