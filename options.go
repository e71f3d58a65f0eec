package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the versioned root of the SMSGateway REST API.
const DefaultBaseURL = "https://smsgateway.me/api/v3"

const (
	formContentType = "application/x-www-form-urlencoded"
	defaultAgent    = "smsgateway-go-client"
)

type Option func(*Options)

type Options struct {
	baseURL        string
	requestLogger  RequestLogger
	requestHeaders map[string]string
	httpClient     *http.Client
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       DefaultBaseURL,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": formContentType,
			"Accept":       "application/json",
			"User-Agent":   defaultAgent,
		},
	}
}

// WithBaseURL overrides [DefaultBaseURL]. A trailing slash is removed.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithUserAgent(agent string) Option {
	return func(o *Options) {
		if agent = strings.TrimSpace(agent); agent != "" {
			o.requestHeaders["User-Agent"] = agent
		}
	}
}

// WithHTTPClient makes the client send requests through hc instead of a
// default http.Client. Timeouts, transport and cookie jar of hc are used
// as they are.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("base URL must be set")
	}

	u, err := url.Parse(o.baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL %q must be an absolute http or https URL", o.baseURL)
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("base URL %q must not contain a query or fragment", o.baseURL)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.requestHeaders["Content-Type"] != formContentType {
		return fmt.Errorf("content type header must be %s", formContentType)
	}

	return nil
}
