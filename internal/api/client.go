package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
)

// Client performs envelope-aware requests against a single configured base
// address. It is stateless per call; the only state is the base URL and the
// underlying HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL. A trailing slash is
// stripped so path joining always produces exactly one separator. An empty
// base URL is allowed here; it surfaces as a config error on the first
// request instead.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Options configures a single request.
type Options struct {
	Method  string
	Token   string
	Query   Query
	JSON    any
	Headers map[string]string
}

func (c *Client) buildURL(path string, query Query) (string, error) {
	if c.baseURL == "" {
		return "", &Error{
			Kind:    KindConfig,
			Code:    500,
			Status:  500,
			Message: "后端地址没配，赶紧把 API_BASE_URL 写好。",
		}
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	full := c.baseURL + path
	if len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			if value == nil {
				continue
			}
			s := fmt.Sprint(value)
			if s == "" {
				continue
			}
			values.Set(key, s)
		}
		if encoded := values.Encode(); encoded != "" {
			full += "?" + encoded
		}
	}

	return full, nil
}

// Request performs one HTTP call and normalizes every failure mode into
// *Error. Response handling, in order: read the body, parse JSON if
// non-empty, reject non-2xx or payload-less responses, reject envelopes with
// a non-zero code, otherwise return the envelope.
func Request[T any](ctx context.Context, c *Client, path string, opts Options) (*Envelope[T], error) {
	target, err := c.buildURL(path, opts.Query)
	if err != nil {
		return nil, err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.JSON != nil {
		encoded, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, &Error{
				Kind:    KindApplication,
				Code:    500,
				Status:  500,
				Message: "请求体序列化失败。",
				cause:   err,
			}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			Code:    500,
			Status:  0,
			Message: err.Error(),
			cause:   err,
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	if opts.JSON != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			Code:    500,
			Status:  0,
			Message: "请求直接黄了。",
			Details: err.Error(),
			cause:   err,
		}
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "br" {
		reader = brotli.NewReader(resp.Body)
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			Code:    500,
			Status:  resp.StatusCode,
			Message: "响应体读不出来。",
			cause:   err,
		}
	}

	var payload *Envelope[T]
	if len(raw) > 0 {
		var envelope Envelope[T]
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, &Error{
				Kind:    KindProtocol,
				Code:    500,
				Status:  resp.StatusCode,
				Message: "后端回了个垃圾 JSON，解析不了。",
				Details: ProtocolDetails{Raw: string(raw), Cause: err.Error()},
				cause:   err,
			}
		}
		payload = &envelope
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !success || payload == nil {
		message := http.StatusText(resp.StatusCode)
		code := resp.StatusCode
		var details any = string(raw)
		if payload != nil {
			if payload.Message != "" {
				message = payload.Message
			}
			if payload.Code != 0 {
				code = payload.Code
			}
			details = payload
		}
		if message == "" {
			message = "请求直接黄了。"
		}
		return nil, &Error{
			Kind:    KindTransport,
			Code:    code,
			Status:  resp.StatusCode,
			Message: message,
			Details: details,
		}
	}

	if payload.Code != 0 {
		message := payload.Message
		if message == "" {
			message = "接口自己报错了。"
		}
		return nil, &Error{
			Kind:    KindApplication,
			Code:    payload.Code,
			Status:  resp.StatusCode,
			Message: message,
			Details: payload,
		}
	}

	return payload, nil
}
