package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	apiframe "github.com/mutablelogic/go-apiframe/pkg/apiframe"
	logger "github.com/mutablelogic/go-apiframe/pkg/logger"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	client "github.com/mutablelogic/go-client"
	zerolog "github.com/rs/zerolog"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Trace HTTP requests and responses"`
	Verbose bool `name:"verbose" help:"Log every response"`

	// Apiframe
	ApiKey   string        `name:"api-key" env:"APIFRAME_API_KEY" help:"Apiframe API key"`
	Endpoint string        `name:"endpoint" help:"Apiframe endpoint" hidden:""`
	Timeout  time.Duration `name:"timeout" help:"Request timeout"`

	// Tracing
	OtelEndpoint string `name:"otel-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"Export spans to this OTLP collector URL"`

	// Output
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	Yaml     bool   `name:"yaml" help:"Write responses as YAML instead of JSON"`
	Config   string `name:"config" type:"path" help:"Config file (default is config.yaml in the user config directory)"`

	// Context
	ctx      context.Context
	tracer   trace.Tracer
	log      zerolog.Logger
	config   *Config
	execName string
}

type CLI struct {
	Globals

	// Commands
	TaskCommands
	FetchCommands
	ToolCommands
	ServerCommands
	VersionCommands
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Apiframe Midjourney API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Read the config file
	config, err := LoadConfig(cli.Config)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.config = config

	// Create a logger, pretty when writing to a terminal
	level := cli.LogLevel
	if level == "" {
		level = config.LogLevel
	}
	cli.Globals.log = logger.New(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))

	// Create a tracer, exporting spans when a collector is set
	if cli.OtelEndpoint != "" {
		shutdown, err := NewTracerProvider(ctx, cli.OtelEndpoint)
		if err != nil {
			cmd.FatalIfErrorf(err)
			return
		}
		defer shutdown(context.Background())
	}
	cli.Globals.tracer = otel.Tracer(cli.Globals.execName)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an Apiframe client configured from the flags and the
// config file
func (g *Globals) Client() (*apiframe.Client, error) {
	apiKey := g.ApiKey
	if apiKey == "" {
		apiKey = g.config.ApiKey
	}

	// Client options
	clientopts := []client.ClientOpt{}
	if g.Debug {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		clientopts = append(clientopts, client.OptTracer(g.tracer))
	}
	if timeout := firstOf(g.Timeout, g.config.Timeout); timeout > 0 {
		clientopts = append(clientopts, client.OptTimeout(timeout))
	}

	// Apiframe options
	opts := []apiframe.Opt{
		apiframe.WithLogger(g.log),
		apiframe.WithVerbose(g.Verbose),
		apiframe.WithClientOpts(clientopts...),
	}
	if endpoint := firstOf(g.Endpoint, g.config.Endpoint); endpoint != "" {
		opts = append(opts, apiframe.WithEndpoint(endpoint))
	}

	return apiframe.New(apiKey, opts...)
}

// Webhook fills in the webhook from the config file when not set on the
// command line
func (g *Globals) Webhook(webhook *schema.Webhook) {
	if webhook.WebhookUrl == "" {
		webhook.WebhookUrl = g.config.WebhookUrl
	}
	if webhook.WebhookSecret == "" && webhook.WebhookUrl == g.config.WebhookUrl {
		webhook.WebhookSecret = g.config.WebhookSecret
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// firstOf returns the first value which is not the zero value
func firstOf[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
