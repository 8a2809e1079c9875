package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"sketchtostitch-me/design"
	"sketchtostitch-me/models"
	"sketchtostitch-me/utils"
)

// proofTemplate lays out one garment silhouette per view that carries
// stickers, with each sticker positioned inside the print region.
const proofTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Arial, sans-serif; margin: 0; padding: 24px; }
	h1 { font-size: 20px; margin-bottom: 4px; }
	.meta { font-size: 12px; color: #555; margin-bottom: 24px; }
	.view { page-break-inside: avoid; margin-bottom: 32px; }
	.view h2 { font-size: 14px; text-transform: capitalize; }
	.stage { position: relative; width: 300px; height: 360px; }
	.silhouette { position: absolute; left: 0; top: 0; width: 300px; height: 360px;
		background: {{.GarmentColor}}; border: 1px solid #ccc; border-radius: 24px 24px 8px 8px; }
	.region { position: absolute; border: 1px dashed #999; }
	.sticker { position: absolute; }
	.sticker img { width: 100%; height: 100%; object-fit: contain; }
	.totals { margin-top: 16px; font-size: 13px; }
</style>
</head>
<body>
	<h1>Order Proof</h1>
	<div class="meta">Order {{.OrderID}} &middot; {{.Customer}} &middot; Qty {{.Quantity}}</div>
	{{range .Views}}
	<div class="view">
		<h2>{{.Name}}</h2>
		<div class="stage">
			<div class="silhouette"></div>
			<div class="region" style="left: {{.RegionX}}px; top: {{.RegionY}}px; width: {{.RegionW}}px; height: {{.RegionH}}px;"></div>
			{{range .Stickers}}
			<div class="sticker" style="left: {{.X}}px; top: {{.Y}}px; width: {{.Width}}px; height: {{.Height}}px; transform: rotate({{.Rotation}}deg);">
				{{if .DataURI}}<img src="{{.DataURI}}" alt="{{.Name}}">{{end}}
			</div>
			{{end}}
		</div>
	</div>
	{{end}}
	<div class="totals">Total: {{.Total}}</div>
</body>
</html>`

type proofSticker struct {
	Name     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	DataURI  template.URL
}

type proofView struct {
	Name     string
	RegionX  float64
	RegionY  float64
	RegionW  float64
	RegionH  float64
	Stickers []proofSticker
}

type proofData struct {
	OrderID      string
	Customer     string
	Quantity     int
	GarmentColor string
	Total        string
	Views        []proofView
}

// ProofService renders a printable PDF proof of an order's design
type ProofService struct{}

// NewProofService creates a new ProofService
func NewProofService() *ProofService {
	return &ProofService{}
}

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// RenderProofHTML renders the proof HTML for an order. Sticker images are
// embedded as data URIs so the page has no external fetches.
func (s *ProofService) RenderProofHTML(order *models.Order) (string, error) {
	images := FetchStickerImages(order.Stickers)

	byView := make(map[models.View][]proofSticker)
	for _, sticker := range order.Stickers {
		ps := proofSticker{
			Name:     sticker.Name,
			Width:    sticker.Width,
			Height:   sticker.Height,
			Rotation: sticker.Rotation,
		}
		region := design.RegionFor(sticker.View, design.SilhouetteWidth, design.SilhouetteHeight)
		ps.X = region.X + sticker.X
		ps.Y = region.Y + sticker.Y
		if data, ok := images[sticker.ID]; ok {
			ps.DataURI = template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data))
		}
		byView[sticker.View] = append(byView[sticker.View], ps)
	}

	views := []models.View{models.ViewFront, models.ViewBack, models.ViewLeft, models.ViewRight}
	data := proofData{
		OrderID:      order.ID,
		Customer:     order.Name,
		Quantity:     order.Quantity,
		GarmentColor: order.GarmentColor,
		Total:        utils.FormatUSD(order.TotalPrice),
	}
	for _, view := range views {
		stickers, ok := byView[view]
		if !ok && view != models.ViewFront {
			continue
		}
		region := design.RegionFor(view, design.SilhouetteWidth, design.SilhouetteHeight)
		data.Views = append(data.Views, proofView{
			Name:     string(view),
			RegionX:  region.X,
			RegionY:  region.Y,
			RegionW:  region.Width,
			RegionH:  region.Height,
			Stickers: stickers,
		})
	}

	tmpl, err := template.New("proof").Parse(proofTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse proof template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute proof template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF renders the order proof HTML to a PDF using chromedp
func (s *ProofService) GeneratePDF(ctx context.Context, order *models.Order) ([]byte, error) {
	htmlContent, err := s.RenderProofHTML(order)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	if err := chromedp.Run(chromedpCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.Enable().Do(ctx)
	})); err != nil {
		log.Printf("⚠️  Warning: Failed to enable page events: %v", err)
	}

	// All assets are inlined, so a data: navigation is enough
	renderURL := "data:text/html," + url.PathEscape(htmlContent)

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// ProofFileName returns the download file name for an order's proof
func ProofFileName(order *models.Order) string {
	return fmt.Sprintf("proof-%s.pdf", order.ID)
}
