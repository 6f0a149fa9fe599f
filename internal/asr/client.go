package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"flashscribe/internal/logging"
)

const (
	defaultEndpoint   = "https://openspeech.bytedance.com/api/v3/auc/bigmodel/recognize/flash"
	defaultResourceID = "volc.bigasr.auc_turbo"
	defaultTimeout    = 5 * time.Minute

	headerAppKey     = "X-Api-App-Key"
	headerAccessKey  = "X-Api-Access-Key"
	headerResourceID = "X-Api-Resource-Id"
	headerRequestID  = "X-Api-Request-Id"
	headerSequence   = "X-Api-Sequence"
	headerStatusCode = "X-Api-Status-Code"
	headerMessage    = "X-Api-Message"
	headerLogID      = "X-Tt-Logid"

	sequenceMarker = "-1"

	// StatusSuccess is the status header value for a completed recognition.
	StatusSuccess = "20000000"
	// StatusSilentAudio is a success variant for audio with no detectable
	// speech; the body still parses as a Result.
	StatusSilentAudio = "20000003"
)

// Credentials are the two opaque strings the endpoint authenticates with.
type Credentials struct {
	AppKey      string
	AccessToken string
}

// Incomplete reports whether any credential value is blank. The endpoint
// needs both; a half pair cannot authenticate and should fail locally before
// anything goes on the wire.
func (c Credentials) Incomplete() bool {
	return strings.TrimSpace(c.AppKey) == "" || strings.TrimSpace(c.AccessToken) == ""
}

// Client submits recognition requests. One Submit call performs exactly one
// synchronous HTTP round trip; there is no polling and no automatic retry.
type Client struct {
	endpoint   string
	resourceID string
	http       *http.Client
	logger     *slog.Logger
}

// ClientOption customizes a client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithEndpoint overrides the recognition endpoint URL.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		if strings.TrimSpace(endpoint) != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithResourceID overrides the resource identifier header value.
func WithResourceID(id string) ClientOption {
	return func(c *Client) {
		if strings.TrimSpace(id) != "" {
			c.resourceID = strings.TrimSpace(id)
		}
	}
}

// WithTimeout bounds the whole round trip, upload included.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient constructs a recognition client.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		endpoint:   defaultEndpoint,
		resourceID: defaultResourceID,
		http:       &http.Client{Timeout: defaultTimeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Submit sends one recognition request and maps the response to a Result or a
// typed error. The outcome is read from the status header, not the HTTP status
// code: an HTTP 200 carrying a non-success status header is a failure. Each
// call generates a fresh request identifier, so a caller-side retry is a new
// request as far as the service is concerned.
func (c *Client) Submit(ctx context.Context, payload Payload, creds Credentials) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("asr client: nil client")
	}
	if creds.Incomplete() {
		return nil, fmt.Errorf("%w: set app key and access token via flags, config file, or environment", ErrCredentialsRequired)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("asr client: encode payload: %w", err)
	}

	requestID := uuid.NewString()
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("asr client: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(headerAppKey, creds.AppKey)
	request.Header.Set(headerAccessKey, creds.AccessToken)
	request.Header.Set(headerResourceID, c.resourceID)
	request.Header.Set(headerRequestID, requestID)
	request.Header.Set(headerSequence, sequenceMarker)

	c.logger.Debug("submitting recognition request",
		logging.String("request_id", requestID),
		logging.Int("body_bytes", len(body)),
	)

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	status := resp.Header.Get(headerStatusCode)
	message := resp.Header.Get(headerMessage)
	if message == "" {
		message = "unknown error"
	}

	c.logger.Info("recognition response",
		logging.String("request_id", requestID),
		logging.String("status", status),
		logging.String("log_id", resp.Header.Get(headerLogID)),
	)

	switch status {
	case StatusSuccess:
	case StatusSilentAudio:
		c.logger.Warn("audio appears to be silent", logging.String("request_id", requestID))
	default:
		return nil, &APIError{Code: status, Message: message}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("asr client: read response: %w", err)
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("asr client: decode response: %w", err)
	}
	return &result, nil
}
