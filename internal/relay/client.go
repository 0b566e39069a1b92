// Package relay posts lead forms to the third-party form relay and classifies
// its answers.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// DefaultEndpoint is the public relay submission URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

const maxResponseBytes = 1 << 20

// ErrMissingAccessKey is wrapped when a submission has no access key configured.
var ErrMissingAccessKey = errors.New("relay access key not configured")

// Field is one named value of a submission. Order is preserved on the wire.
type Field struct {
	Name  string
	Value string
}

// Attachment is an optional file part.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is everything sent to the relay for one form post.
type Submission struct {
	AccessKey  string
	Subject    string
	Fields     []Field
	Attachment *Attachment
}

// Response is a successful relay answer.
type Response struct {
	StatusCode int
	Message    string
	Body       map[string]any
}

// Client submits forms to the relay endpoint.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

// New returns a client for endpoint with the given request timeout.
func New(endpoint string, timeout time.Duration) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Submit posts sub as multipart/form-data and interprets the reply. Every
// failure is returned as *Error.
func (c *Client) Submit(ctx context.Context, sub Submission) (Response, error) {
	if strings.TrimSpace(sub.AccessKey) == "" {
		return Response{}, &Error{Kind: KindRejected, Message: FallbackMessage, Err: ErrMissingAccessKey}
	}

	body, contentType, err := encode(sub)
	if err != nil {
		return Response{}, &Error{Kind: KindTransport, Message: TransportMessage, Err: fmt.Errorf("encode submission: %w", err)}
	}

	endpoint := c.Endpoint
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return Response{}, &Error{Kind: KindTransport, Message: TransportMessage, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Response{}, &Error{Kind: KindTransport, Message: TransportMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Message: TransportMessage, Err: fmt.Errorf("read response: %w", err)}
	}
	return interpret(resp.StatusCode, raw)
}

// interpret classifies a relay reply. The body is decoded before the status
// is checked, so an unparsable error page reports as malformed.
func interpret(status int, raw []byte) (Response, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		if err == nil {
			err = errors.New("response is not a JSON object")
		}
		return Response{}, &Error{
			Kind:       KindMalformed,
			StatusCode: status,
			Message:    fmt.Sprintf("Invalid response from server: %d", status),
			Err:        err,
		}
	}

	message := stringField(payload, "message")
	if status < 200 || status > 299 {
		if message == "" {
			message = fmt.Sprintf("HTTP error! status: %d", status)
		}
		return Response{}, &Error{Kind: KindStatus, StatusCode: status, Message: message}
	}

	if !truthy(payload["success"]) {
		if message == "" {
			message = stringField(payload, "error")
		}
		if message == "" {
			message = FallbackMessage
		}
		return Response{}, &Error{Kind: KindRejected, StatusCode: status, Message: message}
	}

	return Response{StatusCode: status, Message: message, Body: payload}, nil
}

func encode(sub Submission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("access_key", sub.AccessKey); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("subject", sub.Subject); err != nil {
		return nil, "", err
	}
	for _, f := range sub.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}
	if a := sub.Attachment; a != nil && len(a.Data) > 0 {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, a.Field, a.Filename))
		ct := a.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		header.Set("Content-Type", ct)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(a.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func stringField(payload map[string]any, key string) string {
	if s, ok := payload[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}
