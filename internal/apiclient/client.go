package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/session"
	"jobportal_front/pkg/apperrors"
)

const maxErrorBody = 64 * 1024

// Client - обертка над REST API портала вакансий.
// Bearer-токен берется из переданных Credentials, а не из глобального состояния.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    hc,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	domain string
}

// apiErrorBody - форма ошибки бэкенда: {"message": "...", "code": "..."}
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func (c *Client) do(ctx context.Context, creds session.Credentials, r request, out any) error {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var reader io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return apperrors.ErrRequestFailed(fmt.Errorf("encode request body: %w", err), r.domain)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, reader)
	if err != nil {
		return apperrors.ErrRequestFailed(err, r.domain)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.APILog(r.method, r.path, 0, time.Since(start), err)
		if errors.Is(err, context.Canceled) {
			return apperrors.Wrap(err, apperrors.CodeRequestFailed, r.domain, "Request was cancelled", 499)
		}
		return apperrors.ErrRequestFailed(err, r.domain)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		appErr := classify(resp.StatusCode, raw, r.domain)
		logger.APILog(r.method, r.path, resp.StatusCode, time.Since(start), appErr)
		return appErr
	}
	logger.APILog(r.method, r.path, resp.StatusCode, time.Since(start), nil)

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.ErrRequestFailed(fmt.Errorf("decode response: %w", err), r.domain)
	}
	return nil
}

func (c *Client) get(ctx context.Context, creds session.Credentials, domain, path string, query url.Values, out any) error {
	return c.do(ctx, creds, request{method: http.MethodGet, path: path, query: query, domain: domain}, out)
}

func (c *Client) send(ctx context.Context, creds session.Credentials, domain, method, path string, body, out any) error {
	return c.do(ctx, creds, request{method: method, path: path, body: body, domain: domain}, out)
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": []string{fmt.Sprint(page)}}
}

func escape(id string) string {
	return url.PathEscape(id)
}
