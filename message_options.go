package client

import (
	"strconv"
	"time"

	"github.com/peteraglen/smsgateway-go-client/form"
)

// MessageOptions holds the optional scheduling fields accepted by the send
// endpoints. Zero times are omitted.
type MessageOptions struct {
	// SendAt delays sending until the given time.
	SendAt time.Time
	// ExpiresAt gives up on the message if it has not been sent by then.
	ExpiresAt time.Time
}

// Fields returns the options as send_at and expires_at Unix timestamps,
// ready to pass as the extra argument of the SendMessage methods.
func (o MessageOptions) Fields() form.Fields {
	fields := form.New()

	if !o.SendAt.IsZero() {
		fields = fields.Set("send_at", form.String(strconv.FormatInt(o.SendAt.Unix(), 10)))
	}

	if !o.ExpiresAt.IsZero() {
		fields = fields.Set("expires_at", form.String(strconv.FormatInt(o.ExpiresAt.Unix(), 10)))
	}

	return fields
}
