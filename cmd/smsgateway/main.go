package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	client "github.com/peteraglen/smsgateway-go-client"
)

type globalOptions struct {
	Email    string        `help:"Account email." env:"SMSGATEWAY_EMAIL" required:""`
	Password string        `help:"Account password." env:"SMSGATEWAY_PASSWORD" required:""`
	BaseURL  string        `help:"API root URL." env:"SMSGATEWAY_BASE_URL" default:"${base_url}"`
	Timeout  time.Duration `help:"Request timeout." default:"30s"`
	Debug    bool          `help:"Log requests to stderr."`

	out    io.Writer `kong:"-"`
	errOut io.Writer `kong:"-"`
}

type commandLine struct {
	globalOptions

	Contacts struct {
		List   contactsListCmd   `cmd:"" help:"List contacts."`
		View   contactsViewCmd   `cmd:"" help:"Show a single contact."`
		Create contactsCreateCmd `cmd:"" help:"Create a contact."`
	} `cmd:"" help:"Manage contacts."`

	Devices struct {
		List devicesListCmd `cmd:"" help:"List devices."`
		View devicesViewCmd `cmd:"" help:"Show a single device."`
	} `cmd:"" help:"Inspect devices."`

	Messages struct {
		List messagesListCmd `cmd:"" help:"List messages."`
		View messagesViewCmd `cmd:"" help:"Show a single message."`
		Send messagesSendCmd `cmd:"" help:"Send a message to numbers or contacts."`
	} `cmd:"" help:"Send and inspect messages."`
}

func main() {
	// A missing .env is fine; credentials may come from flags or the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	var cli commandLine
	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build command line: %v\n", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}

func newParser(cli *commandLine, out, errOut io.Writer, options ...kong.Option) (*kong.Kong, error) {
	cli.out = out
	cli.errOut = errOut

	options = append([]kong.Option{
		kong.Name("smsgateway"),
		kong.Description("Command line client for the SMSGateway API. Responses are printed as raw JSON."),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
		kong.Vars{"base_url": client.DefaultBaseURL},
	}, options...)

	return kong.New(cli, options...)
}

func (g *globalOptions) logger() *zap.Logger {
	if !g.Debug {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(g.errOut, "failed to create logger, logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func (g *globalOptions) newClient() (*client.Client, func(), error) {
	logger := g.logger()

	c := client.New(g.Email, g.Password,
		client.WithBaseURL(g.BaseURL),
		client.WithRequestLogger(client.NewZapLogger(logger)),
		client.WithUserAgent("smsgateway-cli"),
	)

	if err := c.Connect(context.Background()); err != nil {
		return nil, nil, err
	}

	return c, func() { _ = logger.Sync() }, nil
}
