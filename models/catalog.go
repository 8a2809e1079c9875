package models

// CatalogDesign represents a single template design in the sticker catalog
type CatalogDesign struct {
	ID       int    `json:"id"`
	Src      string `json:"src"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// CatalogCategory groups template designs for the studio sidebar
type CatalogCategory struct {
	Name    string          `json:"name"`
	Designs []CatalogDesign `json:"designs"`
}

// CatalogResponse represents the response for the full template catalog
// Example response:
//
//	{
//	  "categories": [
//	    {"name": "Animals", "designs": [{"id": 1, "src": "...", "name": "Cat", "price": 5, "category": "Animals"}]}
//	  ]
//	}
type CatalogResponse struct {
	Categories []CatalogCategory `json:"categories"`
}

// ColorOption represents a selectable garment color
type ColorOption struct {
	Name  string `json:"name"`
	Value string `json:"value"` // hex string
}

// UploadResponse represents the response after a successful custom upload.
// Src is a data URI ready to be placed as a sticker.
type UploadResponse struct {
	Src    string `json:"src"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
