package client

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeConfigError
	outcomeTransportError
	outcomeNonOKStatus
	outcomeEmptyBody
)

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeConfigError:
		return "config error"
	case outcomeTransportError:
		return "transport error"
	case outcomeNonOKStatus:
		return "non-OK status"
	case outcomeEmptyBody:
		return "empty body"
	default:
		return "unknown"
	}
}

// result records how a single API call ended. Only the body of a successful
// call is ever returned to callers; the other outcomes exist for logging.
type result struct {
	outcome    outcome
	statusCode int
	body       string
	err        error
}

func (r result) Body() string {
	if r.outcome != outcomeSuccess {
		return ""
	}
	return r.body
}

func classify(resp *resty.Response, err error) result {
	if err != nil {
		return result{outcome: outcomeTransportError, err: redact(err)}
	}

	if resp == nil {
		return result{outcome: outcomeTransportError, err: errors.New("no response")}
	}

	if resp.StatusCode() != http.StatusOK {
		return result{outcome: outcomeNonOKStatus, statusCode: resp.StatusCode()}
	}

	body := string(resp.Body())
	if body == "" {
		return result{outcome: outcomeEmptyBody, statusCode: resp.StatusCode()}
	}

	return result{outcome: outcomeSuccess, statusCode: resp.StatusCode(), body: body}
}

// redact drops the request URL from transport errors. GET requests carry the
// account password in their query string.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
