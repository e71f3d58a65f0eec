package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	client "github.com/peteraglen/smsgateway-go-client"
	"github.com/peteraglen/smsgateway-go-client/form"
)

var errEmptyResponse = errors.New("no response from the API, rerun with --debug for details")

// call runs fn with a connected client and prints the raw body it returns.
func (g *globalOptions) call(fn func(context.Context, *client.Client) string) error {
	c, done, err := g.newClient()
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()

	body := fn(ctx, c)
	if body == "" {
		return errEmptyResponse
	}

	_, err = fmt.Fprintln(g.out, body)
	return err
}

type contactsListCmd struct {
	Page int `help:"Page number, 500 contacts per page." default:"1"`
}

func (cmd *contactsListCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.GetContacts(ctx, cmd.Page)
	})
}

type contactsViewCmd struct {
	ID int64 `arg:"" help:"Contact ID."`
}

func (cmd *contactsViewCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.GetContact(ctx, cmd.ID)
	})
}

type contactsCreateCmd struct {
	Name   string `arg:"" help:"Contact name."`
	Number string `arg:"" help:"Phone number."`
}

func (cmd *contactsCreateCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.CreateContact(ctx, cmd.Name, cmd.Number)
	})
}

type devicesListCmd struct {
	Page int `help:"Page number, 500 devices per page." default:"1"`
}

func (cmd *devicesListCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.GetDevices(ctx, cmd.Page)
	})
}

type devicesViewCmd struct {
	ID int64 `arg:"" help:"Device ID."`
}

func (cmd *devicesViewCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.GetDevice(ctx, cmd.ID)
	})
}

type messagesListCmd struct {
	Page int `help:"Page number, 500 messages per page." default:"1"`
}

func (cmd *messagesListCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.GetMessages(ctx, cmd.Page)
	})
}

type messagesViewCmd struct {
	ID int64 `arg:"" help:"Message ID."`
}

func (cmd *messagesViewCmd) Run(g *globalOptions) error {
	return g.call(func(ctx context.Context, c *client.Client) string {
		return c.GetMessage(ctx, cmd.ID)
	})
}

type messagesSendCmd struct {
	Device    int64     `required:"" help:"ID of the device that sends the message."`
	Message   string    `required:"" short:"m" help:"Message text."`
	To        []string  `help:"Phone number to send to. Repeat for several numbers." xor:"recipient"`
	Contact   []int64   `help:"Saved contact ID to send to. Repeat for several contacts." xor:"recipient"`
	SendAt    time.Time `help:"Send at this time (RFC 3339) instead of now."`
	ExpiresAt time.Time `help:"Give up if not sent by this time (RFC 3339)."`
}

func (cmd *messagesSendCmd) Validate() error {
	if len(cmd.To) == 0 && len(cmd.Contact) == 0 {
		return errors.New("one of --to or --contact is required")
	}
	return nil
}

func (cmd *messagesSendCmd) Run(g *globalOptions) error {
	extra := client.MessageOptions{SendAt: cmd.SendAt, ExpiresAt: cmd.ExpiresAt}.Fields()

	return g.call(func(ctx context.Context, c *client.Client) string {
		return cmd.send(ctx, c, extra)
	})
}

func (cmd *messagesSendCmd) send(ctx context.Context, c *client.Client, extra form.Fields) string {
	switch {
	case len(cmd.To) == 1:
		return c.SendMessageToNumber(ctx, cmd.To[0], cmd.Message, cmd.Device, extra)
	case len(cmd.To) > 1:
		return c.SendMessageToManyNumbers(ctx, cmd.To, cmd.Message, cmd.Device, extra)
	case len(cmd.Contact) == 1:
		return c.SendMessageToContact(ctx, cmd.Contact[0], cmd.Message, cmd.Device, extra)
	default:
		return c.SendMessageToManyContacts(ctx, cmd.Contact, cmd.Message, cmd.Device, extra)
	}
}
