package apiframe

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	af "github.com/mutablelogic/go-apiframe"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	tool "github.com/mutablelogic/go-apiframe/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// operation wraps a client method as a tool, with the input schema
// generated from the request type
type operation[T any] struct {
	name        string
	description string
	fn          func(context.Context, T) (*schema.Response, error)
}

// accountRequest is the empty input of the account tool
type accountRequest struct{}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns a tool for each operation of the client
func NewTools(c af.Client) []tool.Tool {
	return []tool.Tool{
		newOperation("apiframe_imagine", "Generate four images from a text prompt. Returns a task_id.", c.Imagine),
		newOperation("apiframe_upscale_1x", "Upscale one of the four images generated by an imagine task to a single image. Returns a task_id.", c.Upscale1x),
		newOperation("apiframe_upscale_alt", "Subtle or creative upscale of an image which has been upscaled with upscale_1x. Returns a task_id.", c.UpscaleAlt),
		newOperation("apiframe_upscale_highres", "Upscale an image no larger than 2048x2048 to 2x or 4x resolution. Returns a task_id.", c.UpscaleHighres),
		newOperation("apiframe_reroll", "Create new images from a previous imagine task. Returns a task_id.", c.Reroll),
		newOperation("apiframe_variations", "Create four variations of one of the four images generated by an imagine task. Returns a task_id.", c.Variations),
		newOperation("apiframe_inpaint", "Redraw a selected area of an upscaled image. Returns a task_id.", c.Inpaint),
		newOperation("apiframe_outpaint", "Enlarge the canvas of an upscaled image, keeping the original content. Returns a task_id.", c.Outpaint),
		newOperation("apiframe_pan", "Broaden the canvas of an upscaled image in one direction. Returns a task_id.", c.Pan),
		newOperation("apiframe_describe", "Write four example prompts based on an image. Returns a task_id.", c.Describe),
		newOperation("apiframe_blend", "Blend between two and five images into one image. Returns a task_id.", c.Blend),
		newOperation("apiframe_seed", "Get the seed of a generated image. Returns a task_id.", c.Seed),
		newOperation("apiframe_faceswap", "Swap the face on a target image with the face on another image. Returns a task_id.", c.Faceswap),
		newOperation("apiframe_fetch", "Get the status and result of a task, including image URLs when finished.", c.Fetch),
		newOperation("apiframe_fetch_many", "Get the status and result of between 2 and 20 tasks.", c.FetchMany),
		newOperation("apiframe_account", "Get account details: email, credits remaining, plan and total images.", func(ctx context.Context, _ accountRequest) (*schema.Response, error) {
			return c.Account(ctx)
		}),
	}
}

func newOperation[T any](name, description string, fn func(context.Context, T) (*schema.Response, error)) *operation[T] {
	return &operation[T]{
		name:        name,
		description: description,
		fn:          fn,
	}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (o *operation[T]) Name() string {
	return o.name
}

func (o *operation[T]) Description() string {
	return o.description
}

// Return the JSON schema for the tool input
func (o *operation[T]) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[T](nil)
}

// Run the operation with the given input
func (o *operation[T]) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req T

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, af.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Call the operation
	response, err := o.fn(ctx, req)
	if err != nil {
		return nil, err
	}

	// Return the decoded response
	return response.Value(), nil
}
