package models

// PlaceholderPreviewURL is assigned to a material edit on completion when it has no preview yet.
const PlaceholderPreviewURL = "https://images.unsplash.com/photo-1449247709967-d4461a6a6103?auto=format&fit=crop&w=1200&q=80"

type MaterialEditRequest struct {
	RenderID    *string `json:"render_id"`
	ElementID   *string `json:"element_id" binding:"required" example:"wall-1"`
	Description *string `json:"description" binding:"required" example:"oak panelling"`
	Color       *string `json:"color" binding:"required" example:"#c8a165"`
}

// MaterialEdit is the stored record. Only the response fields are serialised.
type MaterialEdit struct {
	EditID      string
	Status      string
	PreviewURL  *string
	ElementID   string
	Description string
	Color       string
	RenderID    *string
}

type MaterialEditResponse struct {
	EditID     string  `json:"edit_id"`
	Status     string  `json:"status" enums:"queued,complete"`
	PreviewURL *string `json:"preview_url"`
}

func (m MaterialEdit) Response() MaterialEditResponse {
	return MaterialEditResponse{
		EditID:     m.EditID,
		Status:     m.Status,
		PreviewURL: m.PreviewURL,
	}
}
