// internals/helpers/oss/oss_image.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"mime/multipart"
	"os"
	"strconv"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

var maxUploadSize = int64(5 * 1024 * 1024)

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   WebP pipeline: decode (auto-orientation) → downscale → encode
======================================================================= */

func decodeImage(r io.Reader) (image.Image, error) {
	// imaging honors EXIF orientation; jpeg/png/gif via stdlib registry
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP re-encodes an uploaded image as lossy WebP, bounded by
// IMAGE_WEBP_MAX_W/H and IMAGE_WEBP_QUALITY.
func ConvertToWebP(r io.Reader) ([]byte, error) {
	img, err := decodeImage(r)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, envInt("IMAGE_WEBP_MAX_W", 1600), envInt("IMAGE_WEBP_MAX_H", 1600))

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: envFloat("IMAGE_WEBP_QUALITY", 80)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadImageWebP converts a multipart image to WebP and stores it under
// "<prefix>/<uuid>.webp", returning the public URL.
func (c *Client) UploadImageWebP(fh *multipart.FileHeader, prefix string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("imagen demasiado grande (max %dMB)", maxUploadSize/(1024*1024))
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.New().String())
	return c.UploadBytes(key, data, "image/webp")
}
