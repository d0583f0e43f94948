package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Values accepted by the remote service. They are documented here for
// callers; requests are forwarded without checking them.
const (
	ProcessModeFast  = "fast"
	ProcessModeTurbo = "turbo"
)

const (
	DimensionSquare    = "square"
	DimensionPortrait  = "portrait"
	DimensionLandscape = "landscape"
)

const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

const (
	UpscaleSubtle   = "subtle"
	UpscaleCreative = "creative"
	Upscale2x       = "2x"
	Upscale4x       = "4x"
)

const (
	StatusPending    = "pending"
	StatusStaged     = "staged"
	StatusProcessing = "processing"
	StatusFinished   = "finished"
	StatusFailed     = "failed"
	StatusRetry      = "retry"
)

const (
	DefaultAspectRatio = "1:1"
	DefaultProcessMode = ProcessModeFast
	DefaultDimension   = DimensionSquare
)

const (
	// WebhookSecretHeader carries the webhook secret on deliveries
	WebhookSecretHeader = "X-Webhook-Secret"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
