// Package client provides an HTTP client for the SMSGateway API
// (https://smsgateway.me/api/v3).
//
// The client wraps [github.com/go-resty/resty/v2], signs every request with
// the account email and password, and returns the raw JSON response body.
// Request parameters are flattened with the
// [github.com/peteraglen/smsgateway-go-client/form] package into PHP-style
// bracket notation (number[0]=..., data[0][message]=...).
//
// # Basic Usage
//
//	c := client.New("me@example.com", "secret",
//	    client.WithRequestLogger(client.NewZapLogger(zapLogger)),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	body := c.SendMessageToNumber(ctx, "+15550100", "hello", deviceID, form.Fields{})
//	if body == "" {
//	    // the request failed; see the request logger for why
//	}
//
// # Responses
//
// Every API method returns the response body as a string when the API
// answers with HTTP 200, and an empty string otherwise. Transport errors,
// non-200 statuses and unreadable bodies are not returned as errors; they
// are reported through the [RequestLogger]. The body is not parsed.
//
// No retries are made. Timeouts and cancellation are taken from the context
// passed to each method.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZapLogger] or
// [NewGoKitLogger]. The default [NoopLogger] discards all log output.
// Account credentials are never written to the logger.
package client
