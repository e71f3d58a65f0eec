package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/peteraglen/smsgateway-go-client/form"
)

// GetDevices returns one page of the account's devices, 500 per page. Pages
// below 1 request the first page.
func (c *Client) GetDevices(ctx context.Context, page int) string {
	return c.call(ctx, http.MethodGet, "/devices", pageFields(page))
}

func (c *Client) GetDevice(ctx context.Context, id int64) string {
	return c.call(ctx, http.MethodGet, "/devices/view/"+strconv.FormatInt(id, 10), form.New())
}
