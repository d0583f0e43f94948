package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	uuid "github.com/google/uuid"
	httphandler "github.com/mutablelogic/go-apiframe/pkg/httphandler"
	logger "github.com/mutablelogic/go-apiframe/pkg/logger"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	tool "github.com/mutablelogic/go-apiframe/pkg/tool"
	version "github.com/mutablelogic/go-apiframe/pkg/version"
	server "github.com/mutablelogic/go-server"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	Webhook WebhookServer `cmd:"" name:"webhook" help:"Run a server receiving task results, and serving tools." group:"SERVER"`
}

type WebhookServer struct {
	Addr   string `name:"addr" help:"Listen address" default:"localhost:8084"`
	Prefix string `name:"prefix" help:"Path prefix" default:"/api"`
	Origin string `name:"origin" help:"CORS origin" default:""`
	Secret string `name:"secret" help:"Webhook secret (generated when not set)"`
	Tools  bool   `name:"tools" help:"Serve tools at /tool, requires an API key"`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WebhookServer) Run(ctx *Globals) error {
	versionTag := version.Version()

	// Determine the secret, generate one if needed
	secret := firstOf(cmd.Secret, ctx.config.WebhookSecret)
	if secret == "" {
		secret = uuid.NewString()
		fmt.Fprintln(os.Stderr, "webhook secret:", secret)
	}

	// Toolkit
	var toolkit *tool.Toolkit
	if cmd.Tools {
		if tk, err := ctx.Toolkit(); err != nil {
			return err
		} else {
			toolkit = tk
		}
	}

	// Create middleware
	middleware := []httprouter.HTTPMiddlewareFunc{}
	if mw, ok := any(logger.NewMiddleware(ctx.log)).(server.HTTPMiddleware); ok {
		middleware = append(middleware, mw.WrapFunc)
	}

	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		if cmd.TLS.CertFile != "" {
			certData, err := os.ReadFile(cmd.TLS.CertFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pemData = append(pemData, certData)
		}
		if cmd.TLS.KeyFile != "" {
			keyData, err := os.ReadFile(cmd.TLS.KeyFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS key: %w", err)
			}
			pemData = append(pemData, keyData)
		}
		var err error
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the HTTP router
	router, err := httprouter.NewRouter(ctx.ctx, cmd.Prefix, cmd.Origin, "Apiframe Webhook", versionTag, middleware...)
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(router, true, secret, cmd.deliver(ctx), toolkit); err != nil {
		return err
	}

	// Create the server
	httpserver, err := httpserver.New(cmd.Addr, router, tlsConfig)
	if err != nil {
		return err
	}

	// Run the server
	ctx.log.Info().Str("addr", cmd.Addr).Str("prefix", cmd.Prefix).Msgf("%s@%s started", ctx.execName, versionTag)
	if err := httpserver.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.log.Info().Msgf("%s@%s stopped", ctx.execName, versionTag)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// deliver logs each task result and writes it to stdout
func (cmd *WebhookServer) deliver(ctx *Globals) httphandler.WebhookFunc {
	return func(_ context.Context, response *schema.Response) error {
		if task, err := response.Task(); err == nil {
			ctx.log.Info().
				Str("task_id", task.TaskId).
				Str("task_type", task.TaskType).
				Str("status", task.Status).
				Msg("task result")
		}
		return ctx.Print(response)
	}
}
