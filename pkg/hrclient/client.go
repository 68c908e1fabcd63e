// Package hrclient es el cliente tipado del API HR remoto (/api/v1). Todas
// las pantallas del dashboard hablan con el backend a través de este paquete:
// token bearer por request, contexto cancelable y una única frontera de
// decodificación de la envoltura {code, status, message, data}.
package hrclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/talentgate/talentgate/pkg/config"
	"github.com/talentgate/talentgate/pkg/errx"
)

// Client habla con el backend HR. Es compartido entre requests; el token de
// cada usuario viaja en el contexto vía WithToken.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New crea un cliente contra el base URL dado (incluyendo /api/v1)
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewFromConfig crea un cliente desde la configuración de upstream
func NewFromConfig(cfg config.UpstreamConfig) *Client {
	c := New(cfg.BaseURL, cfg.Timeout)
	c.userAgent = cfg.UserAgent
	return c
}

// ============================================================================
// Per-request token
// ============================================================================

type tokenKey struct{}

// WithToken adjunta el token de acceso del usuario al contexto del request
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ============================================================================
// Core request path
// ============================================================================

// do arma el request, adjunta headers y decodifica la envoltura en out.
// out == nil descarta el payload. La cancelación del contexto se propaga tal
// cual para que las cargas superseded se puedan tragar arriba.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errx.Wrap(err, "failed to encode request body", errx.TypeInternal)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errx.Wrap(err, "failed to build upstream request", errx.TypeInternal)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrUpstreamUnreachable().WithCause(err).WithDetail("path", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrUpstreamUnreachable().WithCause(err).WithDetail("path", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	env, err := parseEnvelope(raw)
	if err != nil {
		return err
	}
	return env.DecodeData(out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// postCreated hace POST y extrae el ID creado de la envoltura
func (c *Client) postCreated(ctx context.Context, path string, body any) (string, error) {
	var data json.RawMessage
	if err := c.post(ctx, path, body, &data); err != nil {
		return "", err
	}
	return decodeCreatedID(data)
}

// statusError arma el error para respuestas no-2xx: usa el message/detail
// del backend si viene, o el texto plantilla con método y status
func statusError(method, path string, status int, raw []byte) *errx.Error {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Detail
	}
	if message == "" {
		message = fmt.Sprintf("%s %s failed (HTTP %d)", method, path, status)
	}

	e := upstreamErrors.New(CodeUpstreamRejected).WithMessage(message)
	e.HTTPStatus = status
	e.Type = typeForStatus(status)
	return e.WithDetail("method", method).WithDetail("path", path)
}

func typeForStatus(status int) errx.Type {
	switch {
	case status == http.StatusUnauthorized:
		return errx.TypeAuthentication
	case status == http.StatusForbidden:
		return errx.TypeAuthorization
	case status == http.StatusNotFound:
		return errx.TypeNotFound
	case status == http.StatusConflict:
		return errx.TypeConflict
	case status >= 400 && status < 500:
		return errx.TypeBusiness
	default:
		return errx.TypeExternal
	}
}

// ============================================================================
// Error Registry
// ============================================================================

var upstreamErrors = errx.NewRegistry("UPSTREAM")

var (
	CodeUpstreamUnreachable = upstreamErrors.Register("UNREACHABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "HR service unreachable; please retry")
	CodeMalformedResponse   = upstreamErrors.Register("MALFORMED_RESPONSE", errx.TypeExternal, http.StatusBadGateway, "HR service returned a malformed response")
	CodeUpstreamRejected    = upstreamErrors.Register("REJECTED", errx.TypeExternal, http.StatusBadGateway, "HR service rejected the request")
)

func ErrUpstreamUnreachable() *errx.Error { return upstreamErrors.New(CodeUpstreamUnreachable) }
func ErrMalformedResponse() *errx.Error   { return upstreamErrors.New(CodeMalformedResponse) }
