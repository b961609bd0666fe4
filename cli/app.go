package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/viant/storefront"
	"github.com/viant/storefront/client"
)

// ErrLoginRequired is returned by commands that need a session when none is stored.
var ErrLoginRequired = errors.New("login required: storefront login <phone> <password>")

// App runs storefront commands, writing results to stdout and diagnostics to stderr.
type App struct {
	options *Options
	stdout  io.Writer
	stderr  io.Writer
	ctx     context.Context
	client  *client.Client
}

type command interface {
	bind(app *App)
}

type base struct {
	app *App
}

func (b *base) bind(app *App) {
	b.app = app
}

func New(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// Run parses args and executes the selected command.
func Run(args []string) error {
	return New(os.Stdout, os.Stderr).Run(args)
}

func (a *App) Run(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	a.ctx = ctx
	a.client = nil
	a.options = &Options{}
	if err := a.preload(args); err != nil {
		return err
	}
	for _, cmd := range a.options.commands() {
		cmd.bind(a)
	}
	parser := flags.NewParser(a.options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "storefront"
	_, err := parser.ParseArgs(args)
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		_, _ = fmt.Fprintln(a.stdout, flagsErr.Message)
		return nil
	}
	return err
}

// preload applies the --config document before flags and environment override it.
func (a *App) preload(args []string) error {
	config := &struct {
		Config string `short:"c" long:"config"`
	}{}
	if _, err := flags.NewParser(config, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return err
	}
	if config.Config == "" {
		return nil
	}
	return a.options.Load(a.ctx, config.Config)
}

func (a *App) storefront() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	a.options.Init()
	a.options.OnSessionExpired = func(context.Context, error) {
		_, _ = fmt.Fprintln(a.stderr, "session expired, please login: storefront login <phone> <password>")
	}
	ret, err := storefront.NewClient(&a.options.ClientOptions)
	if err != nil {
		return nil, err
	}
	a.client = ret
	return ret, nil
}

// authenticated returns the client, failing fast when no session is stored.
func (a *App) authenticated() (*client.Client, error) {
	ret, err := a.storefront()
	if err != nil {
		return nil, err
	}
	if !ret.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return ret, nil
}

func (a *App) print(value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}
