// Package apiclient is the single point of HTTP communication with the blog
// backend. It applies the configured base URL, attaches the bearer token when
// one is present, and turns non-2xx responses into typed APIErrors. It never
// touches the session store; callers decide what to persist.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/FabricioSoica/Front-MindCase/internal/metrics"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID returns a context carrying the inbound request ID so
// outbound backend calls can propagate it as X-Request-ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Upload is a file accompanying a multipart request.
type Upload struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Client wraps HTTP calls to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given backend origin.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request and decodes the 2xx response body into out.
func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, token, http.MethodGet, path, query, "", nil, out)
}

// PostJSON performs a POST request with a JSON body.
func (c *Client) PostJSON(ctx context.Context, token, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, token, http.MethodPost, path, nil, "application/json", reader, out)
}

// PutJSON performs a PUT request with a JSON body.
func (c *Client) PutJSON(ctx context.Context, token, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, token, http.MethodPut, path, nil, "application/json", reader, out)
}

// PostForm performs a POST request encoded as multipart/form-data. Used
// exactly when a file accompanies the request.
func (c *Client) PostForm(ctx context.Context, token, path string, fields map[string]string, file *Upload, out any) error {
	contentType, reader, err := encodeMultipart(fields, file)
	if err != nil {
		return err
	}
	return c.do(ctx, token, http.MethodPost, path, nil, contentType, reader, out)
}

// PutForm performs a PUT request encoded as multipart/form-data.
func (c *Client) PutForm(ctx context.Context, token, path string, fields map[string]string, file *Upload, out any) error {
	contentType, reader, err := encodeMultipart(fields, file)
	if err != nil {
		return err
	}
	return c.do(ctx, token, http.MethodPut, path, nil, contentType, reader, out)
}

// Delete performs a DELETE request. The response body is discarded.
func (c *Client) Delete(ctx context.Context, token, path string) error {
	return c.do(ctx, token, http.MethodDelete, path, nil, "", nil, nil)
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := requestIDFrom(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackendError(method, metricPath(path))
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	metrics.ObserveBackendRequest(method, metricPath(path), strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		// A 2xx body that doesn't match the expected schema is still a
		// backend contract failure, not a crash.
		return &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected response shape: %v", err),
		}
	}

	return nil
}

func decodeError(status int, payload []byte) *APIError {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return &APIError{Status: status, Message: body.Message}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
}

func encodeJSON(body any) (io.Reader, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func encodeMultipart(fields map[string]string, file *Upload) (string, io.Reader, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return "", nil, fmt.Errorf("create form file %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return "", nil, fmt.Errorf("copy form file %s: %w", file.Field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	return writer.FormDataContentType(), &buf, nil
}

// metricPath collapses numeric path segments so article and user IDs don't
// explode the metric label cardinality.
func metricPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if _, err := strconv.Atoi(segment); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
