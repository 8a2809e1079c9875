package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"sketchtostitch-me/design"
	"sketchtostitch-me/models"
	"sketchtostitch-me/pricing"
	"sketchtostitch-me/service"
)

// DesignController handles HTTP requests for the design session: garment
// color, active view, sticker placement and geometry, selection and reset.
type DesignController struct {
	session        *design.Session
	catalogService *service.CatalogService
}

// NewDesignController creates a new DesignController
func NewDesignController(session *design.Session, catalogService *service.CatalogService) *DesignController {
	return &DesignController{
		session:        session,
		catalogService: catalogService,
	}
}

// writeSnapshot encodes the current design snapshot
func (c *DesignController) writeSnapshot(w http.ResponseWriter, handler string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c.session.Snapshot()); err != nil {
		log.Printf("❌ %s: Error encoding snapshot: %v", handler, err)
	}
}

// GetDesign handles GET /design
func (c *DesignController) GetDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetDesign: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c.writeSnapshot(w, "GetDesign")
}

// SetColor handles PUT /design/color
func (c *DesignController) SetColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		log.Printf("❌ SetColor: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SetColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetColor: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.session.SetColor(req.Color); err != nil {
		log.Printf("❌ SetColor: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.writeSnapshot(w, "SetColor")
}

// SetView handles PUT /design/view
func (c *DesignController) SetView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		log.Printf("❌ SetView: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SetViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetView: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.session.SetView(req.View); err != nil {
		log.Printf("❌ SetView: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.writeSnapshot(w, "SetView")
}

// PlaceSticker handles POST /design/stickers.
// Template placements reference a catalog design id; custom placements
// carry the data URI returned by the upload endpoint.
func (c *DesignController) PlaceSticker(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ PlaceSticker: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PlaceStickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ PlaceSticker: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view := req.View
	if view == "" {
		view = c.session.CurrentView()
	}

	var (
		sticker models.Sticker
		err     error
	)
	if req.Src != "" {
		// Custom upload placement
		name := req.Name
		if strings.TrimSpace(name) == "" {
			name = "Custom Design"
		}
		var fee int64
		if engine := pricing.GetEngine(); engine != nil {
			fee = engine.CustomUploadFee()
		}
		sticker, err = c.session.AddSticker(models.StickerCustom, req.Src, name, fee, view)
	} else {
		catalogDesign, findErr := c.catalogService.FindDesign(context.Background(), req.DesignID)
		if findErr != nil {
			log.Printf("❌ PlaceSticker: %v", findErr)
			http.Error(w, findErr.Error(), http.StatusNotFound)
			return
		}
		sticker, err = c.session.AddSticker(models.StickerTemplate, catalogDesign.Src, catalogDesign.Name, catalogDesign.Price, view)
	}
	if err != nil {
		log.Printf("❌ PlaceSticker: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("✅ PlaceSticker: Placed %q on %s view (id=%s)", sticker.Name, sticker.View, sticker.ID)
	c.writeSnapshot(w, "PlaceSticker")
}

// stickerAction routes /design/stickers/{id}[/drag|/transform]
func (c *DesignController) stickerAction(path string) (id, action string) {
	rest := strings.TrimPrefix(path, "/design/stickers/")
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i], rest[i+1:]
	}
	return rest, ""
}

// StickerByID handles PATCH/DELETE /design/stickers/{id} and
// POST /design/stickers/{id}/drag, POST /design/stickers/{id}/transform.
func (c *DesignController) StickerByID(w http.ResponseWriter, r *http.Request) {
	id, action := c.stickerAction(r.URL.Path)
	if id == "" {
		http.Error(w, "Sticker id is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "drag":
		c.dragSticker(w, r, id)
	case "transform":
		c.transformSticker(w, r, id)
	case "":
		switch r.Method {
		case http.MethodPatch:
			c.updateSticker(w, r, id)
		case http.MethodDelete:
			c.removeSticker(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (c *DesignController) updateSticker(w http.ResponseWriter, r *http.Request, id string) {
	var update models.StickerUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("❌ UpdateSticker: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := c.session.UpdateSticker(id, update); err != nil {
		log.Printf("❌ UpdateSticker: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	c.writeSnapshot(w, "UpdateSticker")
}

func (c *DesignController) dragSticker(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.DragRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ DragSticker: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := c.session.DragSticker(id, req); err != nil {
		log.Printf("❌ DragSticker: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	c.writeSnapshot(w, "DragSticker")
}

func (c *DesignController) transformSticker(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ TransformSticker: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := c.session.TransformSticker(id, req); err != nil {
		log.Printf("❌ TransformSticker: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	c.writeSnapshot(w, "TransformSticker")
}

func (c *DesignController) removeSticker(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.session.RemoveSticker(id); err != nil {
		log.Printf("❌ RemoveSticker: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("✅ RemoveSticker: Removed sticker id=%s", id)
	c.writeSnapshot(w, "RemoveSticker")
}

// Select handles POST /design/select. An empty target clears the selection.
func (c *DesignController) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Select: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Select: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.session.Select(req.Target); err != nil {
		log.Printf("❌ Select: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	c.writeSnapshot(w, "Select")
}

// DeleteSelected handles POST /design/delete-selected (the Delete/Backspace
// key path). A delete with no selection is a no-op, not an error.
func (c *DesignController) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ DeleteSelected: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if id, removed := c.session.RemoveSelected(); removed {
		log.Printf("✅ DeleteSelected: Removed sticker id=%s", id)
	}
	c.writeSnapshot(w, "DeleteSelected")
}

// Clear handles POST /design/clear
func (c *DesignController) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Clear: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.session.Clear()
	log.Printf("✅ Clear: Design reset")
	c.writeSnapshot(w, "Clear")
}

// GetRegion handles GET /design/region, exposing the active view's design
// region for the studio canvas.
func (c *DesignController) GetRegion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetRegion: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c.session.Region()); err != nil {
		log.Printf("❌ GetRegion: Error encoding response: %v", err)
	}
}
