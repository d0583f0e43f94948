package main

import (
	"time"

	// Packages
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FetchCommands struct {
	Fetch     FetchCommand     `cmd:"" name:"fetch" help:"Get the result or status of a task." group:"RESULT"`
	FetchMany FetchManyCommand `cmd:"" name:"fetch-many" help:"Get the results or statuses of between 2 and 20 tasks." group:"RESULT"`
	Account   AccountCommand   `cmd:"" name:"account" help:"Get account details and credits remaining." group:"RESULT"`
}

type FetchCommand struct {
	schema.FetchRequest `embed:""`
	Wait                time.Duration `name:"wait" help:"Poll at this interval until the task has finished" optional:""`
	Table               bool          `name:"table" help:"Write the task as a table"`
}

type FetchManyCommand struct {
	schema.FetchManyRequest `embed:""`
	Table                   bool `name:"table" help:"Write the tasks as a table"`
}

type AccountCommand struct {
	Table bool `name:"table" help:"Write the account as a table"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *FetchCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "FetchCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Fetch, and poll until finished when --wait is set
	var response *schema.Response
	for {
		response, err = client.Fetch(parent, cmd.FetchRequest)
		if err != nil || cmd.Wait <= 0 {
			break
		}
		if task, err := response.Task(); err != nil || task.Done() || task.TaskId == "" {
			break
		} else {
			ctx.log.Info().Str("task_id", task.TaskId).Str("status", task.Status).Str("percentage", task.Percentage.String()).Msg("waiting")
		}
		select {
		case <-parent.Done():
			return parent.Err()
		case <-time.After(cmd.Wait):
		}
	}
	if err != nil {
		return err
	}

	// Print
	if cmd.Table {
		tasks, err := response.Tasks()
		if err != nil {
			return err
		}
		return ctx.PrintTable(schema.TaskTable(tasks))
	}
	return ctx.Print(response)
}

func (cmd *FetchManyCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "FetchManyCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Fetch
	response, err := client.FetchMany(parent, cmd.FetchManyRequest)
	if err != nil {
		return err
	}

	// Print
	if cmd.Table {
		tasks, err := response.Tasks()
		if err != nil {
			return err
		}
		return ctx.PrintTable(schema.TaskTable(tasks))
	}
	return ctx.Print(response)
}

func (cmd *AccountCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AccountCommand")
	defer func() { endSpan(err) }()

	// Get account
	response, err := client.Account(parent)
	if err != nil {
		return err
	}

	// Print
	if cmd.Table {
		account, err := response.Account()
		if err != nil {
			return err
		}
		return ctx.PrintTable(schema.AccountTable{Account: account})
	}
	return ctx.Print(response)
}
