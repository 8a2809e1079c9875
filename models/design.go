package models

// DesignSnapshot is a read-only copy of the design session state
// Example response:
//
//	{
//	  "garmentColor": "#2563eb",
//	  "currentView": "front",
//	  "stickers": [{"id": "1718000000000abc123", "type": "template", "name": "Cat", ...}],
//	  "selectedId": "",
//	  "basePrice": 25,
//	  "totalPrice": 33
//	}
type DesignSnapshot struct {
	GarmentColor string    `json:"garmentColor"`
	CurrentView  View      `json:"currentView"`
	Stickers     []Sticker `json:"stickers"`
	SelectedID   string    `json:"selectedId"`
	BasePrice    int64     `json:"basePrice"`
	TotalPrice   int64     `json:"totalPrice"`
}

// SetColorRequest represents the request body for changing the garment color
// Example: {"color": "#dc2626"}
type SetColorRequest struct {
	Color string `json:"color"`
}

// SetViewRequest represents the request body for switching the active view
// Example: {"view": "back"}
type SetViewRequest struct {
	View View `json:"view"`
}

// SelectRequest identifies the sticker hit by a canvas click.
// An empty target means the click landed on the background or the garment
// silhouette, which clears the selection.
type SelectRequest struct {
	Target string `json:"target"`
}
