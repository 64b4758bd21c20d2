package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/travelhub/travel-client/internal/apperrors"
	"github.com/travelhub/travel-client/internal/version"
)

// maximum response body the client will read
const maxResponseBytes = 8 << 20

// Request describes a single call. It is built per call and not retained.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        any
	ShowLoading bool
}

// RequestOption adjusts a Request built by the verb helpers
type RequestOption func(*Request)

// WithoutLoading suppresses the loading indicator for the call
func WithoutLoading() RequestOption {
	return func(r *Request) {
		r.ShowLoading = false
	}
}

// WithQuery adds query parameters, for verbs that also carry a body
func WithQuery(params url.Values) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = url.Values{}
		}
		for k, vs := range params {
			for _, v := range vs {
				r.Query.Add(k, v)
			}
		}
	}
}

// Get calls path with params encoded in the query string
func (c *Client) Get(ctx context.Context, path string, params url.Values, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodGet, path, params, nil, opts))
}

// Post sends body as JSON to path
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodPost, path, nil, body, opts))
}

// Put sends body as JSON to path
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodPut, path, nil, body, opts))
}

// Delete calls path with no body
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodDelete, path, nil, nil, opts))
}

func newRequest(method, path string, params url.Values, body any, opts []RequestOption) Request {
	r := Request{
		Method:      method,
		Path:        path,
		Body:        body,
		ShowLoading: true,
	}
	if len(params) > 0 {
		WithQuery(params)(&r)
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Do sends r and decodes the response envelope.
//
// On success it returns the envelope's data, which is nil when the server sent none.
// Errors are *NetworkError, *APIError or *SessionExpiredError; each has already been reported through PlatformEffects.Notify.
func (c *Client) Do(ctx context.Context, r Request) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.networkFailure(0, err)
		}
	}

	if r.ShowLoading {
		c.effects.SetLoadingVisible(true)
		defer c.effects.SetLoadingVisible(false)
	}

	env, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}

	switch env.Code {
	case apperrors.CodeSuccess:
		return env.Data, nil

	case apperrors.CodeTokenInvalid:
		return nil, c.sessionExpired(ctx, r, env)

	default:
		apiErr := &APIError{Code: env.Code, Message: env.Message}
		userMsg := env.Message
		if userMsg == "" {
			userMsg = c.printer.Sprintf(msgRequestFailed)
			apiErr.Message = userMsg
		}
		c.logger.Debug("api error",
			slog.String("method", r.Method),
			slog.String("path", r.Path),
			slog.Int("code", int(env.Code)),
			slog.String("message", env.Message),
		)
		c.effects.Notify(NoticeError, userMsg)
		return nil, apiErr
	}
}

// send performs the HTTP exchange and returns the decoded envelope, or a reported *NetworkError
func (c *Client) send(ctx context.Context, r Request) (*Envelope, error) {
	target, err := c.resolveURL(r.Path, r.Query)
	if err != nil {
		return nil, c.networkFailure(0, err)
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, c.networkFailure(0, fmt.Errorf("encoding request body: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, c.networkFailure(0, fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.networkFailure(0, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseBytes))
		return nil, c.networkFailure(res.StatusCode, fmt.Errorf("unexpected status %s", res.Status))
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, c.networkFailure(res.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		netErr := &NetworkError{
			StatusCode:  res.StatusCode,
			UserMessage: c.printer.Sprintf(msgInvalidResponse),
			Err:         err,
		}
		c.effects.Notify(NoticeError, netErr.UserMessage)
		return nil, netErr
	}

	return env, nil
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	target := c.baseURL + path

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid request URL %q: %w", target, err)
	}

	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// networkFailure builds, reports and returns a *NetworkError
func (c *Client) networkFailure(statusCode int, err error) *NetworkError {
	msg := msgNetworkError
	if statusCode >= 500 {
		msg = msgServiceUnavailable
	}
	netErr := &NetworkError{
		StatusCode:  statusCode,
		UserMessage: c.printer.Sprintf(msg),
		Err:         err,
	}
	c.effects.Notify(NoticeError, netErr.UserMessage)
	return netErr
}

// sessionExpired clears the session, prompts for login and applies the configured policy
func (c *Client) sessionExpired(ctx context.Context, r Request, env *Envelope) error {
	hadToken := c.session.IsLoggedIn()

	if err := c.session.Logout(); err != nil {
		c.logger.Warn("failed to clear persisted session", slog.String("error", err.Error()))
	}

	c.logger.InfoContext(ctx, "session invalidated by server",
		slog.String("method", r.Method),
		slog.String("path", r.Path),
		slog.Bool("had_token", hadToken),
	)

	userMsg := c.printer.Sprintf(msgSessionExpired)
	c.effects.Notify(NoticeWarning, userMsg)
	c.effects.NavigateToLogin()

	if c.policy == PolicyResolveEmpty {
		return nil
	}
	return &SessionExpiredError{Message: env.Message, UserMessage: userMsg}
}

// IsSessionExpired reports whether err means the session was invalidated by the server
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
