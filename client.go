package lpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHost    = "127.0.0.1"
	servicePort    = 15216
	serviceBaseURL = "http://%s:%d/lpapi/%s"
	formMediaType  = "application/x-www-form-urlencoded; charset=UTF-8"
	defaultTimeout = 30 * time.Second
)

// Client represents an LPAPI service client.
type Client struct {
	httpClient *http.Client
	host       string
	logger     *slog.Logger
}

// Option is a function that configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHost sets the host running the print service. Empty keeps the default.
func WithHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.host = host
		}
	}
}

// WithLogger sets the logger used for per-command debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new LPAPI client talking to the service on the loopback address.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		host:       defaultHost,
		logger:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Host returns the host the client sends commands to.
func (c *Client) Host() string {
	return c.host
}

func (c *Client) actionURL(action string) string {
	return fmt.Sprintf(serviceBaseURL, c.host, servicePort, action)
}

// Response represents a decoded service response.
type Response struct {
	// StatusCode is read from Fields and accepts a number or a numeric string.
	StatusCode int             `json:"-"`
	ResultInfo json.RawMessage `json:"resultInfo,omitempty"`
	// Fields holds every top-level field of the body, including the two above.
	Fields map[string]any `json:"-"`
}

// request sends one command and classifies the answer. It is the only place
// that talks to the network.
func (c *Client) request(ctx context.Context, action string, params Params) (*Response, error) {
	if action == "" {
		return nil, missing("", "action")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.actionURL(action), bytes.NewBufferString(params.Encode()))
	if err != nil {
		return nil, &TransportError{Action: action, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("Content-Type", formMediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Action: action, Err: fmt.Errorf("executing request: %w", err)}
	}

	result, err := parseResponse(resp)
	if err != nil {
		return nil, &TransportError{Action: action, Err: err}
	}

	c.logger.DebugContext(ctx, "lpapi command", "action", action, "params", params, "statusCode", result.StatusCode)

	if result.StatusCode != 0 {
		return nil, &RemoteCommandError{
			StatusCode: result.StatusCode,
			Action:     action,
			Data:       params,
			Fields:     result.Fields,
		}
	}

	return result, nil
}

// parseResponse reads and decodes the service response body.
func parseResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response (HTTP %d): %w", resp.StatusCode, err)
	}

	if err := json.Unmarshal(body, &result.Fields); err != nil {
		return nil, fmt.Errorf("decoding response fields: %w", err)
	}

	raw, ok := result.Fields["statusCode"]
	if !ok {
		return nil, fmt.Errorf("response without statusCode (HTTP %d)", resp.StatusCode)
	}

	result.StatusCode, err = decodeStatusCode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding response (HTTP %d): %w", resp.StatusCode, err)
	}

	return &result, nil
}

func decodeStatusCode(v any) (int, error) {
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, fmt.Errorf("statusCode %v is not an integer", val)
		}
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("statusCode %q is not an integer: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("statusCode %v is not an integer", val)
	}
}

// do sends a command and drops the response payload.
func (c *Client) do(ctx context.Context, action string, params Params) error {
	_, err := c.request(ctx, action, params)
	return err
}

// Bool interprets ResultInfo as a boolean. Numbers are true when non-zero.
func (r *Response) Bool() (bool, error) {
	var v any
	if err := json.Unmarshal(r.ResultInfo, &v); err != nil {
		return false, fmt.Errorf("decoding resultInfo: %w", err)
	}

	switch val := v.(type) {
	case bool:
		return val, nil
	case float64:
		return val != 0, nil
	default:
		return false, fmt.Errorf("resultInfo %s is not a boolean", string(r.ResultInfo))
	}
}

// Int interprets ResultInfo as an integer. Numeric strings are accepted.
func (r *Response) Int() (int, error) {
	var v any
	if err := json.Unmarshal(r.ResultInfo, &v); err != nil {
		return 0, fmt.Errorf("decoding resultInfo: %w", err)
	}

	switch val := v.(type) {
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("resultInfo %q is not an integer: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("resultInfo %s is not an integer", string(r.ResultInfo))
	}
}
