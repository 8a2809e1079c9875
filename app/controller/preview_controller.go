package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"sketchtostitch-me/design"
	"sketchtostitch-me/preview"
)

// PreviewController handles HTTP requests for the 3D garment preview
type PreviewController struct {
	manager *preview.Manager
	session *design.Session
}

// NewPreviewController creates a new PreviewController
func NewPreviewController(manager *preview.Manager, session *design.Session) *PreviewController {
	return &PreviewController{
		manager: manager,
		session: session,
	}
}

// MountRequest represents the request body for mounting a preview
// Example: {"width": 640, "height": 480, "interactive": true}
type MountRequest struct {
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	Interactive bool `json:"interactive"`
}

// MountResponse carries the id of a newly mounted preview
type MountResponse struct {
	ID string `json:"id"`
}

// Mount handles POST /preview
func (c *PreviewController) Mount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Mount: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Mount: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Width < 1 || req.Height < 1 {
		log.Printf("❌ Mount: Invalid viewport %dx%d", req.Width, req.Height)
		http.Error(w, "width and height must be positive", http.StatusBadRequest)
		return
	}

	color := c.session.Snapshot().GarmentColor
	id, _ := c.manager.Mount(req.Width, req.Height, color, req.Interactive)
	log.Printf("✅ Mount: Preview %s mounted (%dx%d, interactive=%t)", id, req.Width, req.Height, req.Interactive)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(MountResponse{ID: id}); err != nil {
		log.Printf("❌ Mount: Error encoding response: %v", err)
	}
}

// previewAction routes /preview/{id}[/input|/color]
func previewAction(path string) (id, action string) {
	rest := strings.TrimPrefix(path, "/preview/")
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i], rest[i+1:]
	}
	return rest, ""
}

// PreviewByID handles GET/DELETE /preview/{id}, POST /preview/{id}/input
// and PUT /preview/{id}/color.
func (c *PreviewController) PreviewByID(w http.ResponseWriter, r *http.Request) {
	id, action := previewAction(r.URL.Path)
	if id == "" {
		http.Error(w, "Preview id is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "input":
		c.submitInput(w, r, id)
	case "color":
		c.setColor(w, r, id)
	case "":
		switch r.Method {
		case http.MethodGet:
			c.getState(w, r, id)
		case http.MethodDelete:
			c.unmount(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (c *PreviewController) getState(w http.ResponseWriter, r *http.Request, id string) {
	renderer, err := c.manager.Get(id)
	if err != nil {
		log.Printf("❌ GetPreview: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(renderer.State()); err != nil {
		log.Printf("❌ GetPreview: Error encoding response: %v", err)
	}
}

func (c *PreviewController) submitInput(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	renderer, err := c.manager.Get(id)
	if err != nil {
		log.Printf("❌ PreviewInput: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var input preview.OrbitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("❌ PreviewInput: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	renderer.SubmitInput(input)
	w.WriteHeader(http.StatusNoContent)
}

func (c *PreviewController) setColor(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	renderer, err := c.manager.Get(id)
	if err != nil {
		log.Printf("❌ PreviewColor: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var req struct {
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ PreviewColor: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Color) == 0 || req.Color[0] != '#' {
		http.Error(w, "Invalid color", http.StatusBadRequest)
		return
	}

	renderer.SetColor(req.Color)
	w.WriteHeader(http.StatusNoContent)
}

func (c *PreviewController) unmount(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.manager.Unmount(id); err != nil {
		log.Printf("❌ Unmount: %v", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("✅ Unmount: Preview %s released", id)
	w.WriteHeader(http.StatusNoContent)
}
