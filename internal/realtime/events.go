package realtime

import "interior-studio-backend/internal/models"

// Event types published on the stream.
const (
	EventLayoutCreated     = "layout.created"
	EventRenderQueued      = "render.queued"
	EventRenderCompleted   = "render.completed"
	EventMaterialQueued    = "material.queued"
	EventMaterialCompleted = "material.completed"
	EventSettingsUpdated   = "settings.updated"
)

func LayoutCreatedPayload(layout models.LayoutResponse) map[string]interface{} {
	return map[string]interface{}{
		"layout_id":     layout.LayoutID,
		"name":          layout.Name,
		"element_count": len(layout.Elements),
	}
}

func RenderPayload(job models.RenderJob) map[string]interface{} {
	return map[string]interface{}{
		"job_id":    job.JobID,
		"status":    job.Status,
		"image_url": job.ImageURL,
	}
}

func MaterialPayload(edit models.MaterialEdit) map[string]interface{} {
	return map[string]interface{}{
		"edit_id":     edit.EditID,
		"element_id":  edit.ElementID,
		"status":      edit.Status,
		"preview_url": edit.PreviewURL,
	}
}

// SettingsUpdatedPayload names the changed fields. Values are never published.
func SettingsUpdatedPayload(changed []string) map[string]interface{} {
	return map[string]interface{}{
		"fields": changed,
	}
}
