package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchtostitch-me/models"
)

// encodeTestImage produces PNG bytes of a solid image of the given size
func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessUpload_ReturnsDataURI(t *testing.T) {
	data := encodeTestImage(t, 100, 50)

	dataURI, width, height, err := ProcessUpload(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dataURI, "data:image/jpeg;base64,"))
	assert.Equal(t, 100, width)
	assert.Equal(t, 50, height)

	// The payload decodes back to a JPEG of the same size
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	decoded, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
}

func TestProcessUpload_DownscalesLargeImages(t *testing.T) {
	data := encodeTestImage(t, 1024, 512)

	_, width, height, err := ProcessUpload(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, 512, width)
	assert.Equal(t, 256, height)
}

func TestProcessUpload_RejectsDeclaredOversize(t *testing.T) {
	data := encodeTestImage(t, 10, 10)

	_, _, _, err := ProcessUpload(bytes.NewReader(data), MaxUploadSize+1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestProcessUpload_RejectsActualOversize(t *testing.T) {
	// Declared size lies; the hard cap on the reader still rejects it
	oversized := bytes.Repeat([]byte{0xff}, MaxUploadSize+1)

	_, _, _, err := ProcessUpload(bytes.NewReader(oversized), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestProcessUpload_RejectsNonImage(t *testing.T) {
	_, _, _, err := ProcessUpload(strings.NewReader("not an image"), 12)
	assert.Error(t, err)
}

func TestOptimizeImage_ThumbSmallerThanMedium(t *testing.T) {
	data := encodeTestImage(t, 1200, 900)

	thumb, err := OptimizeImage(data, "thumb")
	require.NoError(t, err)
	medium, err := OptimizeImage(data, "medium")
	require.NoError(t, err)

	thumbImg, err := jpeg.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	mediumImg, err := jpeg.Decode(bytes.NewReader(medium))
	require.NoError(t, err)

	assert.Equal(t, 300, thumbImg.Bounds().Dx())
	assert.Equal(t, 800, mediumImg.Bounds().Dx())
}

func TestOptimizeImage_SmallImagePassesThrough(t *testing.T) {
	data := encodeTestImage(t, 80, 60)

	out, err := OptimizeImage(data, "thumb")
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestFetchImage_DataURI(t *testing.T) {
	payload := []byte("hello")
	src := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	out, err := FetchImage(src)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestFetchImage_BadDataURI(t *testing.T) {
	_, err := FetchImage("data:image/jpeg;hex,abcdef")
	assert.Error(t, err)
}

func TestFetchStickerImages_BestEffort(t *testing.T) {
	good := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("img"))
	stickers := []models.Sticker{
		{ID: "a", Src: good},
		{ID: "b", Src: "data:broken"},
	}

	images := FetchStickerImages(stickers)
	assert.Len(t, images, 1)
	assert.Equal(t, []byte("img"), images["a"])
}

func TestCachePath(t *testing.T) {
	assert.Equal(t, "cache/images/catalog_design_3_thumb.jpg", CachePath(3, "thumb"))
}
