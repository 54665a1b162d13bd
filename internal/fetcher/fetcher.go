// Package fetcher issues single GET requests against the placeholder user
// endpoint and wraps any failure in an errors.FetchError.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"helperkit/internal/common"
	"helperkit/internal/errors"
	"helperkit/internal/promises"
)

const (
	DefaultEndpoint   = "https://jsonplaceholder.typicode.com/users"
	DefaultRegionURL  = "https://ipapi.co/region_code/"
	DefaultCountryURL = "https://ipapi.co/country/"
)

// Response is the raw outcome of a successful request
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// StatusError reports a response outside the 2xx range
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Response.StatusCode)
}

// ClientLocation is the caller's region and country as reported by ipapi.co
type ClientLocation struct {
	RegionCode string `json:"region_code"`
	Country    string `json:"country"`
}

// Fetcher performs one round trip per call. No retries, no caching.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	endpoint   string
	regionURL  string
	countryURL string
	aggregator *promises.Aggregator
	logger     *common.SafeLogger
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithClient substitutes the HTTP client
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithEndpoint substitutes the user list URL
func WithEndpoint(endpoint string) Option {
	return func(f *Fetcher) {
		if endpoint != "" {
			f.endpoint = endpoint
		}
	}
}

// WithRegionEndpoints substitutes the region and country lookup URLs
func WithRegionEndpoints(regionURL, countryURL string) Option {
	return func(f *Fetcher) {
		if regionURL != "" {
			f.regionURL = regionURL
		}
		if countryURL != "" {
			f.countryURL = countryURL
		}
	}
}

// WithTimeout bounds each round trip. Zero leaves requests unbounded.
// It applies to whichever client is in effect after all options run.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = timeout
	}
}

// WithAggregator sets the task runner used for concurrent lookups
func WithAggregator(aggregator *promises.Aggregator) Option {
	return func(f *Fetcher) {
		f.aggregator = aggregator
	}
}

// WithLogger substitutes the logger
func WithLogger(logger *common.SafeLogger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Fetcher. Without options it targets DefaultEndpoint using a
// plain http.Client.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:     &http.Client{},
		endpoint:   DefaultEndpoint,
		regionURL:  DefaultRegionURL,
		countryURL: DefaultCountryURL,
		logger:     common.FetchLogger,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout > 0 {
		client := *f.client
		client.Timeout = f.timeout
		f.client = &client
	}
	return f
}

// Endpoint returns the URL Fetch requests
func (f *Fetcher) Endpoint() string {
	return f.endpoint
}

// Fetch issues one GET to the configured endpoint and returns the response
// unmodified. Any failure, including a non-2xx status, is returned as an
// *errors.FetchError with message "An Error Occurred".
func (f *Fetcher) Fetch(ctx context.Context) (*Response, error) {
	resp, err := f.get(ctx, f.endpoint)
	if err != nil {
		return nil, errors.NewFetchError(err)
	}
	return resp, nil
}

// ClientRegionAndCountry looks up the caller's region code and country
// concurrently. Failures are reported with message "Unexpected Result".
func (f *Fetcher) ClientRegionAndCountry(ctx context.Context) (*ClientLocation, error) {
	lookup := func(url string) promises.Task[*Response] {
		return func(ctx context.Context) (*Response, error) {
			return f.get(ctx, url)
		}
	}

	responses, err := promises.Run(ctx, f.aggregator, lookup(f.regionURL), lookup(f.countryURL))
	if err != nil {
		return nil, errors.NewFetchErrorWithMessage(errors.MessageUnexpected, err)
	}

	return &ClientLocation{
		RegionCode: strings.TrimSpace(string(responses[0].Body)),
		Country:    strings.TrimSpace(string(responses[1].Body)),
	}, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*Response, error) {
	logger := f.logger.With("request_id", uuid.NewString())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	logger.Debug("GET %s", url)

	httpResp, err := f.client.Do(req)
	if err != nil {
		logger.Debug("GET %s failed after %v: %v", url, time.Since(start), err)
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       body,
	}
	logger.Debug("GET %s returned %d (%d bytes) in %v", url, resp.StatusCode, len(body), time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Response: resp}
	}
	return resp, nil
}
