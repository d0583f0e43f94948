package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Webhook is the optional delivery target for the result of a task. When
// set, the service posts the final result to URL with Secret passed in the
// x-webhook-secret header.
type Webhook struct {
	WebhookUrl    string `json:"webhook_url,omitempty" jsonschema:"The final result of the task will be posted at this URL" name:"webhook-url" help:"Post the final result of the task to this URL" optional:""`
	WebhookSecret string `json:"webhook_secret,omitempty" jsonschema:"Passed as x-webhook-secret in the webhook call headers" name:"webhook-secret" help:"Secret passed in the x-webhook-secret header" optional:""`
}

// ImagineRequest generates four images from a text prompt
type ImagineRequest struct {
	Prompt      string `json:"prompt" jsonschema:"The text prompt for image generation" arg:"" help:"Text prompt"`
	AspectRatio string `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio for the image, default 1:1" help:"Aspect ratio (default 1:1)" optional:""`
	ProcessMode string `json:"process_mode,omitempty" jsonschema:"Generation mode, fast or turbo. Default is fast" help:"Generation mode, fast or turbo (default fast)" optional:""`
	Webhook     `embed:""`
}

// Upscale1xRequest upscales one of the four generated images to a single image
type Upscale1xRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the original imagine task" arg:"" help:"Parent task ID"`
	Index        string `json:"index" jsonschema:"The index of the image to upscale: 1, 2, 3 or 4" arg:"" help:"Image index (1-4)"`
	Webhook      `embed:""`
}

// UpscaleAltRequest performs a subtle or creative upscale of a 1x upscaled image
type UpscaleAltRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the upscale-1x task" arg:"" help:"Parent task ID"`
	Type         string `json:"type" jsonschema:"The type of upscale: subtle or creative" arg:"" help:"Upscale type (subtle, creative)"`
	Webhook      `embed:""`
}

// UpscaleHighresRequest upscales an image to a higher resolution
type UpscaleHighresRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the image to upscale" arg:"" help:"Parent task ID"`
	Type         string `json:"type" jsonschema:"The type of upscale: 2x or 4x" arg:"" help:"Upscale type (2x, 4x)"`
	Webhook      `embed:""`
}

// RerollRequest creates new images from a previous imagine task
type RerollRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the original imagine task" arg:"" help:"Parent task ID"`
	Prompt       string `json:"prompt,omitempty" jsonschema:"Prompt for re-drawing, defaults to the prompt of the parent task" help:"Prompt (default is the parent prompt)" optional:""`
	AspectRatio  string `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio for the image, default 1:1" help:"Aspect ratio (default 1:1)" optional:""`
	Webhook      `embed:""`
}

// VariationsRequest creates four variations of one of the generated images
type VariationsRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the original task" arg:"" help:"Parent task ID"`
	Index        string `json:"index" jsonschema:"The index of the image: 1, 2, 3, 4, strong or subtle" arg:"" help:"Image index (1-4, strong, subtle)"`
	Prompt       string `json:"prompt,omitempty" jsonschema:"Drawing prompt, defaults to the prompt of the parent task" help:"Prompt (default is the parent prompt)" optional:""`
	AspectRatio  string `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio for the image, default 1:1" help:"Aspect ratio (default 1:1)" optional:""`
	Webhook      `embed:""`
}

// InpaintRequest redraws a selected area of an upscaled image
type InpaintRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the upscale-1x task" arg:"" help:"Parent task ID"`
	Mask         string `json:"mask" jsonschema:"Base64 encoding of the image corresponding to the selected area" arg:"" help:"Base64 encoded mask image"`
	Prompt       string `json:"prompt,omitempty" jsonschema:"Drawing prompt for the selected area" help:"Prompt for the selected area" optional:""`
	Webhook      `embed:""`
}

// OutpaintRequest enlarges the canvas of an upscaled image
type OutpaintRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the upscale-1x task" arg:"" help:"Parent task ID"`
	ZoomRatio    string `json:"zoom_ratio" jsonschema:"Zoom ratio: 1, 1.5 or 2" arg:"" help:"Zoom ratio (1, 1.5, 2)"`
	AspectRatio  string `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio for the image, default 1:1" help:"Aspect ratio (default 1:1)" optional:""`
	Prompt       string `json:"prompt,omitempty" jsonschema:"Drawing prompt for the new areas" help:"Prompt for the new areas" optional:""`
	Webhook      `embed:""`
}

// PanRequest broadens the canvas of an upscaled image in one direction
type PanRequest struct {
	ParentTaskId string `json:"parent_task_id" jsonschema:"The task ID of the upscale-1x task" arg:"" help:"Parent task ID"`
	Direction    string `json:"direction" jsonschema:"Expansion direction: up, down, left or right" arg:"" help:"Direction (up, down, left, right)"`
	Prompt       string `json:"prompt,omitempty" jsonschema:"Drawing prompt for the new areas" help:"Prompt for the new areas" optional:""`
	Webhook      `embed:""`
}

// DescribeRequest writes four example prompts based on an image
type DescribeRequest struct {
	ImageUrl    string `json:"image_url" jsonschema:"The URL of the image to describe, accessible on the Internet" arg:"" help:"Image URL"`
	ProcessMode string `json:"process_mode,omitempty" jsonschema:"Generation mode, fast or turbo. Default is fast" help:"Generation mode, fast or turbo (default fast)" optional:""`
	Webhook     `embed:""`
}

// BlendRequest blends between two and five images into one image
type BlendRequest struct {
	ImageUrls   []string `json:"image_urls" jsonschema:"The URLs of the images to blend, between 2 and 5" arg:"" help:"Image URLs (2-5)"`
	Dimension   string   `json:"dimension,omitempty" jsonschema:"square, portrait or landscape. Default is square" help:"Dimension, square, portrait or landscape (default square)" optional:""`
	ProcessMode string   `json:"process_mode,omitempty" jsonschema:"Generation mode, fast or turbo. Default is fast" help:"Generation mode, fast or turbo (default fast)" optional:""`
	Webhook     `embed:""`
}

// SeedRequest gets the seed of a generated image
type SeedRequest struct {
	TaskId  string `json:"task_id" jsonschema:"The task ID of the generated image" arg:"" help:"Task ID"`
	Webhook `embed:""`
}

// FaceswapRequest swaps the face on a target image with the face on another image
type FaceswapRequest struct {
	TargetImageUrl string `json:"target_image_url" jsonschema:"The URL of the image where the face will be swapped" arg:"" help:"Target image URL"`
	SwapImageUrl   string `json:"swap_image_url" jsonschema:"The URL of the image the new face is taken from" arg:"" help:"Swap image URL"`
	Webhook        `embed:""`
}

// FetchRequest gets the result or status of a task
type FetchRequest struct {
	TaskId string `json:"task_id" jsonschema:"The task ID" arg:"" help:"Task ID"`
}

// FetchManyRequest gets the results or statuses of between 2 and 20 tasks
type FetchManyRequest struct {
	TaskIds []string `json:"task_ids" jsonschema:"The task IDs, between 2 and 20" arg:"" help:"Task IDs (2-20)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithDefaults returns a copy of the request with empty optional fields set
// to the service defaults
func (r ImagineRequest) WithDefaults() ImagineRequest {
	r.AspectRatio = orDefault(r.AspectRatio, DefaultAspectRatio)
	r.ProcessMode = orDefault(r.ProcessMode, DefaultProcessMode)
	return r
}

func (r RerollRequest) WithDefaults() RerollRequest {
	r.AspectRatio = orDefault(r.AspectRatio, DefaultAspectRatio)
	return r
}

func (r VariationsRequest) WithDefaults() VariationsRequest {
	r.AspectRatio = orDefault(r.AspectRatio, DefaultAspectRatio)
	return r
}

func (r OutpaintRequest) WithDefaults() OutpaintRequest {
	r.AspectRatio = orDefault(r.AspectRatio, DefaultAspectRatio)
	return r
}

func (r DescribeRequest) WithDefaults() DescribeRequest {
	r.ProcessMode = orDefault(r.ProcessMode, DefaultProcessMode)
	return r
}

func (r BlendRequest) WithDefaults() BlendRequest {
	r.Dimension = orDefault(r.Dimension, DefaultDimension)
	r.ProcessMode = orDefault(r.ProcessMode, DefaultProcessMode)
	return r
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
