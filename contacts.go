package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/peteraglen/smsgateway-go-client/form"
)

// CreateContact adds a contact to the account and returns the JSON create
// status.
func (c *Client) CreateContact(ctx context.Context, name, number string) string {
	fields := form.New().
		Set("name", form.String(name)).
		Set("number", form.String(number))

	return c.call(ctx, http.MethodPost, "/contacts/create", fields)
}

// GetContacts returns one page of contacts, 500 per page. Pages below 1
// request the first page.
func (c *Client) GetContacts(ctx context.Context, page int) string {
	return c.call(ctx, http.MethodGet, "/contacts", pageFields(page))
}

func (c *Client) GetContact(ctx context.Context, id int64) string {
	return c.call(ctx, http.MethodGet, "/contacts/view/"+strconv.FormatInt(id, 10), form.New())
}

func pageFields(page int) form.Fields {
	if page < 1 {
		page = 1
	}
	return form.New().Set("page", form.String(strconv.Itoa(page)))
}
