package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"sketchtostitch-me/models"
)

const (
	cacheDir = "cache/images"

	// MaxUploadSize caps custom sticker uploads
	MaxUploadSize = 10 * 1024 * 1024 // 10MB

	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	qualityUpload = 85

	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
	maxSizeUpload = 512
)

// EnsureCacheDir ensures the thumbnail cache directory exists
func EnsureCacheDir() error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a catalog design and size
func CachePath(designID int, size string) string {
	filename := fmt.Sprintf("catalog_design_%d_%s.jpg", designID, size)
	return filepath.Join(cacheDir, filename)
}

// ReadFromCache reads an optimized image from the cache, if present
func ReadFromCache(cachePath string) ([]byte, bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SaveToCache saves an optimized image to the cache
func SaveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// resizeToFit downscales img so its largest dimension is at most maxDim,
// preserving the aspect ratio. Images already small enough pass through.
func resizeToFit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDim && height <= maxDim {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDim
		newHeight = int(float64(height) * float64(maxDim) / float64(width))
	} else {
		newHeight = maxDim
		newWidth = int(float64(width) * float64(maxDim) / float64(height))
	}

	log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
	return imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
}

// OptimizeImage converts raw image bytes to a downscaled JPEG.
// size: "thumb" or "medium".
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	maxDim, quality := maxSizeMedium, qualityMedium
	switch size {
	case "thumb":
		maxDim, quality = maxSizeThumb, qualityThumb
	case "medium":
		// defaults
	default:
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizeToFit(img, maxDim), &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// ProcessUpload validates and converts a custom sticker upload into an
// embeddable data URI. Uploads over MaxUploadSize are rejected before any
// decode work.
func ProcessUpload(reader io.Reader, declaredSize int64) (string, int, int, error) {
	if declaredSize > MaxUploadSize {
		return "", 0, 0, fmt.Errorf("file size must be less than 10MB")
	}

	// Hard cap the read regardless of the declared size
	data, err := io.ReadAll(io.LimitReader(reader, MaxUploadSize+1))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", 0, 0, fmt.Errorf("file size must be less than 10MB")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to decode uploaded image: %w", err)
	}
	log.Printf("📸 Upload decoded: format=%s, bounds=%v", format, img.Bounds())

	resized := resizeToFit(img, maxSizeUpload)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: qualityUpload}); err != nil {
		return "", 0, 0, fmt.Errorf("failed to encode upload: %w", err)
	}

	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	bounds := resized.Bounds()
	return dataURI, bounds.Dx(), bounds.Dy(), nil
}

// FetchImage downloads an image by URL. Data URIs are decoded in place.
func FetchImage(src string) ([]byte, error) {
	const dataPrefix = "base64,"
	if len(src) > 5 && src[:5] == "data:" {
		idx := bytes.Index([]byte(src), []byte(dataPrefix))
		if idx < 0 {
			return nil, fmt.Errorf("unsupported data URI encoding")
		}
		return base64.StdEncoding.DecodeString(src[idx+len(dataPrefix):])
	}

	resp, err := http.Get(src)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// FetchStickerImages loads the images of all given stickers concurrently
// and returns a best-effort map keyed by sticker id. Individual failures
// are logged and skipped; the rest of the batch still applies.
func FetchStickerImages(stickers []models.Sticker) map[string][]byte {
	images := make(map[string][]byte, len(stickers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, sticker := range stickers {
		wg.Add(1)
		go func(sticker models.Sticker) {
			defer wg.Done()
			data, err := FetchImage(sticker.Src)
			if err != nil {
				log.Printf("⚠️  Warning: Failed to load image for sticker %s: %v", sticker.ID, err)
				return
			}
			mu.Lock()
			images[sticker.ID] = data
			mu.Unlock()
		}(sticker)
	}
	wg.Wait()

	return images
}
