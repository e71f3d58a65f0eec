package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/peteraglen/smsgateway-go-client/form"
)

const sendPath = "/messages/send"

// GetMessages returns one page of sent and received messages, 500 per page.
// Pages below 1 request the first page.
func (c *Client) GetMessages(ctx context.Context, page int) string {
	return c.call(ctx, http.MethodGet, "/messages", pageFields(page))
}

func (c *Client) GetMessage(ctx context.Context, id int64) string {
	return c.call(ctx, http.MethodGet, "/messages/view/"+strconv.FormatInt(id, 10), form.New())
}

// SendMessageToNumber sends message to a phone number through device.
// extra carries optional send fields such as those built by
// [MessageOptions.Fields]; pass form.Fields{} for none. Keys set by this
// method replace the same keys in extra, and extra itself is not modified.
func (c *Client) SendMessageToNumber(ctx context.Context, to, message string, device int64, extra form.Fields) string {
	return c.send(ctx, extra, "number", form.String(to), message, device)
}

// SendMessageToManyNumbers sends one message to each number in to.
func (c *Client) SendMessageToManyNumbers(ctx context.Context, to []string, message string, device int64, extra form.Fields) string {
	return c.send(ctx, extra, "number", form.Strings(to...), message, device)
}

// SendMessageToContact sends message to a saved contact.
func (c *Client) SendMessageToContact(ctx context.Context, contact int64, message string, device int64, extra form.Fields) string {
	return c.send(ctx, extra, "contact", form.String(strconv.FormatInt(contact, 10)), message, device)
}

// SendMessageToManyContacts sends one message to each saved contact.
func (c *Client) SendMessageToManyContacts(ctx context.Context, contacts []int64, message string, device int64, extra form.Fields) string {
	ids := make([]string, len(contacts))
	for i, id := range contacts {
		ids[i] = strconv.FormatInt(id, 10)
	}

	return c.send(ctx, extra, "contact", form.Strings(ids...), message, device)
}

// SendManyMessages sends a batch of independent messages. Each entry holds
// the fields of one message, for example number, message and device, and is
// sent as data[i][key].
func (c *Client) SendManyMessages(ctx context.Context, data []form.Fields) string {
	return c.call(ctx, http.MethodPost, sendPath, form.New().Set("data", form.Maps(data...)))
}

func (c *Client) send(ctx context.Context, extra form.Fields, recipientKey string, recipient form.Value, message string, device int64) string {
	fields := extra.
		Set(recipientKey, recipient).
		Set("message", form.String(message)).
		Set("device", form.String(strconv.FormatInt(device, 10)))

	return c.call(ctx, http.MethodPost, sendPath, fields)
}
