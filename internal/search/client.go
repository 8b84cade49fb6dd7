package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/mediasearch/mediasearch-cli/internal/config"
	"github.com/mediasearch/mediasearch-cli/internal/logging"
)

const tracerName = "github.com/mediasearch/mediasearch-cli/internal/search"

// StatusError reports a non-2xx answer from the search service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search service status: %d message: %s", e.Code, e.Body)
}

// Client sends queries to one variant's endpoint.
type Client struct {
	variant    config.Variant
	httpClient *http.Client
	tp         trace.TracerProvider
	tracer     trace.Tracer
	newID      func() string
}

type Option func(*Client)

// WithHTTPClient replaces the default per-request, keep-alive-free client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tp = tp }
}

func WithRequestIDs(newID func() string) Option {
	return func(c *Client) { c.newID = newID }
}

func New(v config.Variant, opts ...Option) *Client {
	c := &Client{variant: v}
	for _, opt := range opts {
		opt(c)
	}
	if c.tp == nil {
		c.tp = noop.NewTracerProvider()
	}
	c.tracer = c.tp.Tracer(tracerName)
	if c.newID == nil {
		c.newID = func() string { return xid.New().String() }
	}
	if c.httpClient == nil {
		base := &http.Transport{Proxy: http.ProxyFromEnvironment, DisableKeepAlives: true}
		c.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(base, otelhttp.WithTracerProvider(c.tp)),
			Timeout:   v.Timeout.Std(),
		}
	}
	return c
}

func (c *Client) Variant() config.Variant { return c.variant }

// Search POSTs {"<query_field>": query} and decodes the page list.
func (c *Client) Search(ctx context.Context, query string) (pages []Page, err error) {
	ctx, span := c.tracer.Start(ctx, "mediasearch.search", trace.WithAttributes(
		attribute.String("mediasearch.variant", c.variant.Name),
		attribute.String("mediasearch.endpoint", c.variant.Endpoint),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.Int("mediasearch.pages", len(pages)),
				attribute.Int("mediasearch.items", ItemCount(pages)),
			)
		}
		span.End()
	}()

	blob, err := json.Marshal(map[string]string{c.variant.QueryField: query})
	if err != nil {
		return nil, errors.Wrap(err, "encode query")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.variant.Endpoint, bytes.NewReader(blob))
	if err != nil {
		return nil, errors.Wrap(err, "build POST request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	reqID := c.newID()
	req.Header.Set("X-Request-Id", reqID)
	span.SetAttributes(attribute.String("mediasearch.request_id", reqID))

	logging.Debug(fmt.Sprintf("%s [search]: POST %s id=%s", c.variant.Name, c.variant.Endpoint, reqID))
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "POST")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	if c.variant.EchoesResponse() {
		logging.Debug(fmt.Sprintf("%s %d", body, res.StatusCode))
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Code: res.StatusCode, Body: string(body)}
	}
	return DecodePages(body, c.variant.ItemsKey, c.variant.RequiresItems())
}
