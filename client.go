package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/peteraglen/smsgateway-go-client/form"
)

// Client is an SMSGateway API client. It is safe for concurrent use; the
// credentials and options are fixed when the client is created.
type Client struct {
	email      string
	password   string
	options    *Options
	client     *resty.Client
	once       sync.Once
	connectErr error
}

// New creates a client authenticating as the given account. Options are
// validated when [Client.Connect] or the first API call runs.
func New(email, password string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		email:    email,
		password: password,
		options:  options,
	}
}

// Connect validates the credentials and options and prepares the underlying
// HTTP client. Calling it is optional: API methods connect on first use and
// send requests even with empty credentials, leaving the API to reject them.
// Connect does not contact the API.
func (c *Client) Connect(_ context.Context) error {
	if c == nil {
		return errors.New("sms gateway client is nil")
	}

	if c.email == "" {
		return errors.New("email must be set")
	}

	if c.password == "" {
		return errors.New("password must be set")
	}

	return c.connect()
}

// connect builds the resty client once. Subsequent calls return the result
// of the first one.
func (c *Client) connect() error {
	c.once.Do(func() {
		if err := c.options.Validate(); err != nil {
			c.connectErr = fmt.Errorf("invalid options: %w", err)
			return
		}

		var rc *resty.Client
		if c.options.httpClient != nil {
			rc = resty.NewWithClient(c.options.httpClient)
		} else {
			// resty.New attaches a cookie jar; calls must not share state.
			rc = resty.New().SetCookieJar(nil)
		}

		c.client = rc.
			SetBaseURL(c.options.baseURL).
			SetHeaders(c.options.requestHeaders).
			SetLogger(c.options.requestLogger).
			SetRetryCount(0)
	})

	return c.connectErr
}

// call sends one API request and reduces the outcome to the body text.
func (c *Client) call(ctx context.Context, method, path string, fields form.Fields) string {
	return c.execute(ctx, method, path, fields).Body()
}

// execute injects the credentials into fields, encodes them as the query
// string (GET) or request body (POST) and classifies the response.
func (c *Client) execute(ctx context.Context, method, path string, fields form.Fields) result {
	if c == nil {
		return result{outcome: outcomeConfigError, err: errors.New("sms gateway client is nil")}
	}

	if err := c.connect(); err != nil {
		c.options.requestLogger.Errorf("%s %s not sent: %v", method, path, err)
		return result{outcome: outcomeConfigError, err: err}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	fields = fields.
		Set("email", form.String(c.email)).
		Set("password", form.String(c.password))
	encoded := form.EncodeFields(fields)

	req := c.client.R().SetContext(ctx)
	target := path

	switch method {
	case http.MethodGet:
		// Kept in the URL rather than resty's query params, which re-sort keys.
		target = path + "?" + encoded
	case http.MethodPost:
		req.SetBody(encoded)
	default:
		err := fmt.Errorf("unsupported method %s", method)
		c.options.requestLogger.Errorf("%s %s not sent: %v", method, path, err)
		return result{outcome: outcomeConfigError, err: err}
	}

	c.options.requestLogger.Debugf("%s %s sending %d form fields", method, path, fields.Len())

	resp, err := req.Execute(method, target)
	res := classify(resp, err)

	switch res.outcome {
	case outcomeTransportError:
		c.options.requestLogger.Errorf("%s %s failed: %v", method, path, res.err)
	case outcomeNonOKStatus:
		c.options.requestLogger.Warnf("%s %s returned status %d", method, path, res.statusCode)
	case outcomeEmptyBody:
		c.options.requestLogger.Warnf("%s %s returned status %d with an empty body", method, path, res.statusCode)
	default:
		c.options.requestLogger.Debugf("%s %s returned %d bytes", method, path, len(res.body))
	}

	return res
}
