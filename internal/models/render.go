package models

// Job lifecycle states shared by render jobs and material edits.
// StatusProcessing is part of the render schema but no operation sets it.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusComplete   = "complete"
)

// PlaceholderRenderURL is assigned to a render job on completion when it has no image yet.
const PlaceholderRenderURL = "https://images.unsplash.com/photo-1505691938895-1758d7feb511?auto=format&fit=crop&w=1200&q=80"

type RenderRequest struct {
	LayoutID        *string  `json:"layout_id"`
	Prompt          *string  `json:"prompt" binding:"required" example:"cozy loft"`
	StylePreset     *string  `json:"style_preset" binding:"required" example:"scandinavian"`
	FurnitureAssets []string `json:"furniture_assets"`
	// NanoBananaKey overrides the stored credential for this request only.
	NanoBananaKey *string `json:"nano_banana_key"`
}

type RenderJob struct {
	JobID       string  `json:"job_id"`
	Status      string  `json:"status" enums:"queued,processing,complete"`
	Prompt      string  `json:"prompt"`
	StylePreset string  `json:"style_preset"`
	ImageURL    *string `json:"image_url"`

	LayoutID        *string  `json:"-"`
	FurnitureAssets []string `json:"-"`
}
