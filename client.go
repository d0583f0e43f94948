package apiframe

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps the Apiframe API operations. Every
// task-creating operation returns a response containing the task_id of the
// new task, which can later be passed to Fetch or FetchMany.
type Client interface {
	// Generate four images from a text prompt
	Imagine(ctx context.Context, req schema.ImagineRequest) (*schema.Response, error)

	// Upscale one of the four generated images to a single image
	Upscale1x(ctx context.Context, req schema.Upscale1xRequest) (*schema.Response, error)

	// Subtle or creative upscale of a 1x upscaled image
	UpscaleAlt(ctx context.Context, req schema.UpscaleAltRequest) (*schema.Response, error)

	// Upscale an image to 2x or 4x resolution
	UpscaleHighres(ctx context.Context, req schema.UpscaleHighresRequest) (*schema.Response, error)

	// Create new images from a previous imagine task
	Reroll(ctx context.Context, req schema.RerollRequest) (*schema.Response, error)

	// Create four variations of one of the generated images
	Variations(ctx context.Context, req schema.VariationsRequest) (*schema.Response, error)

	// Redraw a selected area of an image
	Inpaint(ctx context.Context, req schema.InpaintRequest) (*schema.Response, error)

	// Enlarge the canvas of an image (zoom out)
	Outpaint(ctx context.Context, req schema.OutpaintRequest) (*schema.Response, error)

	// Broaden the canvas of an image in one direction
	Pan(ctx context.Context, req schema.PanRequest) (*schema.Response, error)

	// Write four example prompts based on an image
	Describe(ctx context.Context, req schema.DescribeRequest) (*schema.Response, error)

	// Blend multiple images into one image
	Blend(ctx context.Context, req schema.BlendRequest) (*schema.Response, error)

	// Get the seed of a generated image
	Seed(ctx context.Context, req schema.SeedRequest) (*schema.Response, error)

	// Swap the face on a target image with the face on another image
	Faceswap(ctx context.Context, req schema.FaceswapRequest) (*schema.Response, error)

	// Get the result or status of a task
	Fetch(ctx context.Context, req schema.FetchRequest) (*schema.Response, error)

	// Get the results or statuses of several tasks
	FetchMany(ctx context.Context, req schema.FetchManyRequest) (*schema.Response, error)

	// Get account details: credits, plan and usage
	Account(ctx context.Context) (*schema.Response, error)
}
