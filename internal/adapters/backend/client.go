package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	DefaultTimeout = 5 * time.Minute
	maxLoggedBody  = 512
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// Client talks to the Dream AI REST API. The identity header is resolved from
// the session on every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	identity   ports.IdentitySource
	logger     logrus.FieldLogger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(logger logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(baseURL string, identity ports.IdentitySource, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		identity:   identity,
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) currentEmail(ctx context.Context) string {
	if c.identity == nil {
		return ""
	}
	return c.identity.CurrentUserEmail(ctx)
}

type filePart struct {
	field    string
	filename string
	data     []byte
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path)
}

// doMultipart posts a form. The content type comes from the multipart writer
// so the boundary is always present.
func (c *Client) doMultipart(ctx context.Context, path string, fields [][2]string, file *filePart) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if file != nil {
		part, err := writer.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, fmt.Errorf("write form file: %w", err)
		}
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", field[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, path)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.identity != nil {
		for key, value := range c.identity.AuthHeaders(ctx) {
			req.Header.Set(key, value)
		}
	}
	return req, nil
}

func (c *Client) send(req *http.Request, endpoint string) ([]byte, error) {
	logger := c.logger.WithFields(logrus.Fields{"endpoint": endpoint, "method": req.Method})
	logger.Debug("backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithFields(logrus.Fields{"status": resp.StatusCode, "body": truncateBody(raw)}).Warn("backend request failed")
		return raw, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Message: errorMessage(raw)}
	}

	logger.WithField("status", resp.StatusCode).Debug("backend response")
	return raw, nil
}

func userPath(email string, suffix string) string {
	return "/users/" + url.PathEscape(email) + suffix
}

func errorMessage(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	for _, path := range []string{"message", "detail", "error"} {
		if value := gjson.GetBytes(raw, path); value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}
	return ""
}

// failureMessage is what an envelope reports for a failed call.
func failureMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	return err.Error()
}

func decodeJSON[T any](raw []byte, endpoint string) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return out, nil
}

func requireIdentity(email string) error {
	if email == "" {
		return domain.ErrNotAuthenticated
	}
	return nil
}

func truncateBody(raw []byte) string {
	if len(raw) > maxLoggedBody {
		return string(raw[:maxLoggedBody]) + "..."
	}
	return string(raw)
}
