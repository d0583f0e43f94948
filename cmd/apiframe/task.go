package main

import (
	"context"

	// Packages
	af "github.com/mutablelogic/go-apiframe"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type TaskCommands struct {
	Imagine        ImagineCommand        `cmd:"" name:"imagine" help:"Generate four images from a text prompt." group:"TASK"`
	Upscale1x      Upscale1xCommand      `cmd:"" name:"upscale-1x" help:"Upscale one of the four generated images." group:"TASK"`
	UpscaleAlt     UpscaleAltCommand     `cmd:"" name:"upscale-alt" help:"Subtle or creative upscale of a 1x upscaled image." group:"TASK"`
	UpscaleHighres UpscaleHighresCommand `cmd:"" name:"upscale-highres" help:"Upscale an image to 2x or 4x resolution." group:"TASK"`
	Reroll         RerollCommand         `cmd:"" name:"reroll" help:"Create new images from a previous imagine task." group:"TASK"`
	Variations     VariationsCommand     `cmd:"" name:"variations" help:"Create four variations of a generated image." group:"TASK"`
	Inpaint        InpaintCommand        `cmd:"" name:"inpaint" help:"Redraw a selected area of an upscaled image." group:"TASK"`
	Outpaint       OutpaintCommand       `cmd:"" name:"outpaint" help:"Enlarge the canvas of an upscaled image." group:"TASK"`
	Pan            PanCommand            `cmd:"" name:"pan" help:"Broaden the canvas of an upscaled image in one direction." group:"TASK"`
	Describe       DescribeCommand       `cmd:"" name:"describe" help:"Write four example prompts based on an image." group:"TASK"`
	Blend          BlendCommand          `cmd:"" name:"blend" help:"Blend between two and five images into one image." group:"TASK"`
	Seed           SeedCommand           `cmd:"" name:"seed" help:"Get the seed of a generated image." group:"TASK"`
	Faceswap       FaceswapCommand       `cmd:"" name:"faceswap" help:"Swap the face on a target image." group:"TASK"`
}

type ImagineCommand struct {
	schema.ImagineRequest `embed:""`
}

type Upscale1xCommand struct {
	schema.Upscale1xRequest `embed:""`
}

type UpscaleAltCommand struct {
	schema.UpscaleAltRequest `embed:""`
}

type UpscaleHighresCommand struct {
	schema.UpscaleHighresRequest `embed:""`
}

type RerollCommand struct {
	schema.RerollRequest `embed:""`
}

type VariationsCommand struct {
	schema.VariationsRequest `embed:""`
}

type InpaintCommand struct {
	schema.InpaintRequest `embed:""`
}

type OutpaintCommand struct {
	schema.OutpaintRequest `embed:""`
}

type PanCommand struct {
	schema.PanRequest `embed:""`
}

type DescribeCommand struct {
	schema.DescribeRequest `embed:""`
}

type BlendCommand struct {
	schema.BlendRequest `embed:""`
}

type SeedCommand struct {
	schema.SeedRequest `embed:""`
}

type FaceswapCommand struct {
	schema.FaceswapRequest `embed:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ImagineCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "ImagineCommand", cmd.ImagineRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Imagine(parent, cmd.ImagineRequest)
	})
}

func (cmd *Upscale1xCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "Upscale1xCommand", cmd.Upscale1xRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Upscale1x(parent, cmd.Upscale1xRequest)
	})
}

func (cmd *UpscaleAltCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "UpscaleAltCommand", cmd.UpscaleAltRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.UpscaleAlt(parent, cmd.UpscaleAltRequest)
	})
}

func (cmd *UpscaleHighresCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "UpscaleHighresCommand", cmd.UpscaleHighresRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.UpscaleHighres(parent, cmd.UpscaleHighresRequest)
	})
}

func (cmd *RerollCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "RerollCommand", cmd.RerollRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Reroll(parent, cmd.RerollRequest)
	})
}

func (cmd *VariationsCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "VariationsCommand", cmd.VariationsRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Variations(parent, cmd.VariationsRequest)
	})
}

func (cmd *InpaintCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "InpaintCommand", cmd.InpaintRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Inpaint(parent, cmd.InpaintRequest)
	})
}

func (cmd *OutpaintCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "OutpaintCommand", cmd.OutpaintRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Outpaint(parent, cmd.OutpaintRequest)
	})
}

func (cmd *PanCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "PanCommand", cmd.PanRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Pan(parent, cmd.PanRequest)
	})
}

func (cmd *DescribeCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "DescribeCommand", cmd.DescribeRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Describe(parent, cmd.DescribeRequest)
	})
}

func (cmd *BlendCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "BlendCommand", cmd.BlendRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Blend(parent, cmd.BlendRequest)
	})
}

func (cmd *SeedCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "SeedCommand", cmd.SeedRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Seed(parent, cmd.SeedRequest)
	})
}

func (cmd *FaceswapCommand) Run(ctx *Globals) error {
	ctx.Webhook(&cmd.Webhook)
	return runTask(ctx, "FaceswapCommand", cmd.FaceswapRequest, func(client af.Client, parent context.Context) (*schema.Response, error) {
		return client.Faceswap(parent, cmd.FaceswapRequest)
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runTask creates a client, calls fn within a span and prints the response
func runTask[T any](ctx *Globals, name string, req T, fn func(af.Client, context.Context) (*schema.Response, error)) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, name,
		attribute.String("request", types.Stringify(req)),
	)
	defer func() { endSpan(err) }()

	// Call the operation
	response, err := fn(client, parent)
	if err != nil {
		return err
	}

	// Print
	return ctx.Print(response)
}
