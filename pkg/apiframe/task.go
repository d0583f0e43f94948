package apiframe

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Imagine generates four images from a text prompt
func (c *Client) Imagine(ctx context.Context, req schema.ImagineRequest) (*schema.Response, error) {
	return c.post(ctx, "imagine", req.WithDefaults())
}

// Upscale1x upscales one of the four images generated by Imagine
func (c *Client) Upscale1x(ctx context.Context, req schema.Upscale1xRequest) (*schema.Response, error) {
	return c.post(ctx, "upscale-1x", req)
}

// UpscaleAlt doubles the size of a 1x upscaled image, keeping details
// (subtle) or adding them (creative)
func (c *Client) UpscaleAlt(ctx context.Context, req schema.UpscaleAltRequest) (*schema.Response, error) {
	return c.post(ctx, "upscale-alt", req)
}

// UpscaleHighres upscales an image no larger than 2048x2048 to 2x or 4x
func (c *Client) UpscaleHighres(ctx context.Context, req schema.UpscaleHighresRequest) (*schema.Response, error) {
	return c.post(ctx, "upscale-highres", req)
}

// Reroll creates new images from a previous Imagine task
func (c *Client) Reroll(ctx context.Context, req schema.RerollRequest) (*schema.Response, error) {
	return c.post(ctx, "reroll", req.WithDefaults())
}

// Variations creates four variations of one of the generated images
func (c *Client) Variations(ctx context.Context, req schema.VariationsRequest) (*schema.Response, error) {
	return c.post(ctx, "variations", req.WithDefaults())
}

// Inpaint redraws a selected area of an image (Vary Region)
func (c *Client) Inpaint(ctx context.Context, req schema.InpaintRequest) (*schema.Response, error) {
	return c.post(ctx, "inpaint", req)
}

// Outpaint enlarges the canvas of an image beyond its original size (Zoom Out)
func (c *Client) Outpaint(ctx context.Context, req schema.OutpaintRequest) (*schema.Response, error) {
	return c.post(ctx, "outpaint", req.WithDefaults())
}

// Pan broadens the canvas of an image in one direction
func (c *Client) Pan(ctx context.Context, req schema.PanRequest) (*schema.Response, error) {
	return c.post(ctx, "pan", req)
}

// Describe writes four example prompts based on an image
func (c *Client) Describe(ctx context.Context, req schema.DescribeRequest) (*schema.Response, error) {
	return c.post(ctx, "describe", req.WithDefaults())
}

// Blend blends multiple images into one image
func (c *Client) Blend(ctx context.Context, req schema.BlendRequest) (*schema.Response, error) {
	return c.post(ctx, "blend", req.WithDefaults())
}

// Seed gets the seed of a generated image
func (c *Client) Seed(ctx context.Context, req schema.SeedRequest) (*schema.Response, error) {
	return c.post(ctx, "seed", req)
}

// Faceswap swaps the face on a target image with the face on another image.
// Each image must contain exactly one face.
func (c *Client) Faceswap(ctx context.Context, req schema.FaceswapRequest) (*schema.Response, error) {
	return c.post(ctx, "faceswap", req)
}
