package router

import (
	"net/http"
	"strings"

	"sketchtostitch-me/app/controller"
	"sketchtostitch-me/auth"
)

type Controllers struct {
	Auth         *controller.AuthController
	Catalog      *controller.CatalogController
	Design       *controller.DesignController
	Preview      *controller.PreviewController
	Order        *controller.OrderController
	Payment      *controller.PaymentController
	Confirmation *controller.ConfirmationController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all routes. Everything except /ping and the auth
// endpoints requires a signed-in session.
func SetupRoutes(controllers *Controllers, sessions *auth.SessionManager) {
	gate := sessions.RequireSession

	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Auth routes (open)
	http.HandleFunc("/auth/signin", controllers.Auth.SignIn)
	http.HandleFunc("/auth/signout", controllers.Auth.SignOut)
	http.HandleFunc("/auth/session", controllers.Auth.Session)

	// Catalog routes
	http.HandleFunc("/catalog", gate(controllers.Catalog.GetCatalog))
	http.HandleFunc("/catalog/colors", gate(controllers.Catalog.GetColors))
	http.HandleFunc("/catalog/upload", gate(controllers.Catalog.Upload))

	// Design image endpoint: /catalog/designs/{id}/image
	http.HandleFunc("/catalog/designs/", gate(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Catalog.GetDesignImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	}))

	// Design session routes
	http.HandleFunc("/design", gate(controllers.Design.GetDesign))
	http.HandleFunc("/design/color", gate(controllers.Design.SetColor))
	http.HandleFunc("/design/view", gate(controllers.Design.SetView))
	http.HandleFunc("/design/region", gate(controllers.Design.GetRegion))
	http.HandleFunc("/design/stickers", gate(controllers.Design.PlaceSticker))
	http.HandleFunc("/design/stickers/", gate(controllers.Design.StickerByID))
	http.HandleFunc("/design/select", gate(controllers.Design.Select))
	http.HandleFunc("/design/delete-selected", gate(controllers.Design.DeleteSelected))
	http.HandleFunc("/design/clear", gate(controllers.Design.Clear))

	// Preview routes
	http.HandleFunc("/preview", gate(controllers.Preview.Mount))
	http.HandleFunc("/preview/", gate(controllers.Preview.PreviewByID))

	// Checkout routes
	http.HandleFunc("/orders", gate(controllers.Order.Orders))
	http.HandleFunc("/orders/current", gate(controllers.Order.CurrentOrder))
	http.HandleFunc("/payment", gate(controllers.Payment.Pay))
	http.HandleFunc("/confirmation", gate(controllers.Confirmation.Confirmation))
	http.HandleFunc("/confirmation/receipt", gate(controllers.Confirmation.Receipt))
	http.HandleFunc("/confirmation/proof", gate(controllers.Confirmation.Proof))
}
