package main

import (
	"encoding/json"
	"os"

	// Packages
	apiframe "github.com/mutablelogic/go-apiframe/pkg/apiframe"
	tool "github.com/mutablelogic/go-apiframe/pkg/tool"
	uitable "github.com/mutablelogic/go-apiframe/pkg/ui/table"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	lo "github.com/samber/lo"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolCommands struct {
	ListTools ListToolsCommand `cmd:"" name:"tools" help:"List tools." group:"TOOL"`
	GetTool   GetToolCommand   `cmd:"" name:"tool" help:"Get tool name, description and input schema." group:"TOOL"`
	CallTool  CallToolCommand  `cmd:"" name:"call" help:"Run a tool with JSON input." group:"TOOL"`
}

type ListToolsCommand struct{}

type GetToolCommand struct {
	Name string `arg:"" name:"name" help:"Tool name"`
}

type CallToolCommand struct {
	Name  string `arg:"" name:"name" help:"Tool name"`
	Input string `arg:"" name:"input" help:"Tool input as a JSON object" optional:""`
}

// toolTable implements table.TableData for a list of tools
type toolTable []tool.Tool

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCommand) Run(ctx *Globals) error {
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}
	return ctx.PrintTable(toolTable(toolkit.Tools()))
}

func (cmd *GetToolCommand) Run(ctx *Globals) error {
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}
	meta, err := toolkit.Meta(cmd.Name)
	if err != nil {
		return err
	}
	return ctx.Print(meta)
}

func (cmd *CallToolCommand) Run(ctx *Globals) (err error) {
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CallToolCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Run the tool
	var input any
	if cmd.Input != "" {
		input = json.RawMessage(cmd.Input)
	}
	result, err := toolkit.Run(parent, cmd.Name, input)
	if err != nil {
		return err
	}

	// Print
	if ctx.Yaml {
		return ctx.Print(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit returns a toolkit with a tool for each Apiframe operation
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	client, err := g.Client()
	if err != nil {
		return nil, err
	}
	return tool.NewToolkit(apiframe.NewTools(client)...)
}

///////////////////////////////////////////////////////////////////////////////
// TOOL TABLE

var _ uitable.TableData = toolTable(nil)

func (t toolTable) Header() []string {
	return []string{"TOOL", "DESCRIPTION"}
}

func (t toolTable) Len() int {
	return len(t)
}

func (t toolTable) Row(i int) []any {
	return lo.ToAnySlice([]string{t[i].Name(), t[i].Description()})
}
