package models

// Element types accepted in a layout.
const (
	ElementWall   = "wall"
	ElementDoor   = "door"
	ElementWindow = "window"
)

// LayoutElement is one wall, door or window on the canvas. Pointer fields are
// required to be present; empty strings and zero geometry are valid values.
type LayoutElement struct {
	// ID is assigned by the client and must be unique within its layout.
	ID     *string  `json:"id" binding:"required"`
	Type   string   `json:"type" binding:"required,oneof=wall door window"`
	Label  *string  `json:"label" binding:"required"`
	Width  *float64 `json:"width" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
	Left   *float64 `json:"left" binding:"required"`
	Top    *float64 `json:"top" binding:"required"`
	Angle  float64  `json:"angle"`
	Fill   *string  `json:"fill"`
}

// Clone returns a copy that shares no pointers with e.
func (e LayoutElement) Clone() LayoutElement {
	e.ID = cloneString(e.ID)
	e.Label = cloneString(e.Label)
	e.Width = cloneFloat(e.Width)
	e.Height = cloneFloat(e.Height)
	e.Left = cloneFloat(e.Left)
	e.Top = cloneFloat(e.Top)
	e.Fill = cloneString(e.Fill)
	return e
}

type LayoutPayload struct {
	Name          string          `json:"name" binding:"required" example:"Studio"`
	CeilingHeight float64         `json:"ceiling_height" binding:"required,gt=0" example:"2.7"`
	Notes         *string         `json:"notes"`
	Elements      []LayoutElement `json:"elements" binding:"dive"`
}

type LayoutResponse struct {
	LayoutID string `json:"layout_id"`
	LayoutPayload
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
