// Package client drives the ordering service purely by following link relations: the only
// URI it knows up front is the root. Every step checks the hypermedia contract of the
// response it receives and fails fast with ErrContractViolation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"restbucks/pkg/hal"
	"restbucks/pkg/jsonpath"
	"restbucks/pkg/logger"
)

var ErrContractViolation = errors.New("hypermedia contract violation")

const (
	RelOrders  = "restbucks:orders"
	RelOrder   = "restbucks:order"
	RelPayment = "restbucks:payment"
	RelReceipt = "restbucks:receipt"
	RelCancel  = "restbucks:cancel"
	RelUpdate  = "restbucks:update"

	// CardNumber is the card the service is seeded with.
	CardNumber = "1234123412341234"

	DefaultPollInterval = 2 * time.Second

	StatusDelivered = "Delivered"

	firstOrderExpression = "$._embedded['restbucks:orders'][?(@.status == 'Payment expected')]._links.self.href"
	drinksTemplateExpr   = "$._templates.default.properties[0].options.link.href"
	locationInlineExpr   = "$._templates.default.properties[1].options.inline[0]"
	firstDrinkValueExpr  = "$[0].value"
	statusExpr           = "$.status"
)

type clientLogger interface {
	Info(msg string, fields ...logger.Field)
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) Document() (*hal.Document, error) {
	return hal.Parse(r.Body)
}

func (r *Response) JSONPath() (*jsonpath.Document, error) {
	return jsonpath.Parse(r.Body)
}

type Client struct {
	baseURL      string
	httpClient   *http.Client
	log          clientLogger
	pollInterval time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

func New(baseURL string, log clientLogger, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          log,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method  string
	url     string
	accept  string
	body    any
	headers map[string]string
}

func (c *Client) do(ctx context.Context, req request) (*Response, error) {
	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.method, req.url, err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.accept != "" {
		httpReq.Header.Set("Accept", req.accept)
	}
	for name, value := range req.headers {
		httpReq.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method, req.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", req.method, req.url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

func (c *Client) get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, request{method: http.MethodGet, url: url, accept: hal.MediaTypeHAL})
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
}

func expectStatus(resp *Response, step string, want int) error {
	if resp.StatusCode != want {
		return violation("%s: expected status %d, got %d: %s", step, want, resp.StatusCode, resp.Body)
	}
	return nil
}

func requireLink(doc *hal.Document, step, rel string) (hal.Link, error) {
	link, err := doc.FindRequiredLinkWithRel(rel)
	if err != nil {
		return hal.Link{}, fmt.Errorf("%w: %s: %v", ErrContractViolation, step, err)
	}
	return link, nil
}

func forbidLinks(doc *hal.Document, step string, rels ...string) error {
	for _, rel := range rels {
		if doc.Links.Has(rel) {
			return violation("%s: unexpected link %s", step, rel)
		}
	}
	return nil
}

func parseDocument(resp *Response, step string) (*hal.Document, error) {
	doc, err := resp.Document()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrContractViolation, step, err)
	}
	return doc, nil
}

// expand resolves a followed link. Templated links are expanded without variables.
func expand(link hal.Link) (string, error) {
	href, err := link.Expand(nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrContractViolation, err)
	}
	return href, nil
}
