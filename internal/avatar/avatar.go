// Package avatar stores uploaded contact pictures together with the square
// thumbnails the UI displays.
package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/rolodex/internal/blob"
	"github.com/mmynk/rolodex/internal/models"
)

// Sizes are the thumbnail edges generated for every upload.
var Sizes = []int{110, 174}

const (
	// MaxUploadBytes bounds the encoded size of an upload.
	MaxUploadBytes = 8 << 20
	// MaxPixels bounds width*height, checked from the header before decoding.
	MaxPixels = 40_000_000
)

// ErrUnsupportedImage is returned for payloads that are not JPEG or PNG, or
// that exceed MaxUploadBytes or MaxPixels.
var ErrUnsupportedImage = errors.New("unsupported image")

// Colors is the background palette for contacts without a picture.
var Colors = []string{
	"#fdb660", "#93521e", "#bd5067", "#b3d5fe", "#ff9807",
	"#709512", "#5f479a", "#e5e5cd", "#2f9b6a", "#ca6d37",
}

// ColorFor picks a stable palette color for seed.
func ColorFor(seed string) string {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return Colors[h.Sum32()%uint32(len(Colors))]
}

// Processor writes originals and thumbnails to a blob store.
type Processor struct {
	blobs blob.Store
}

func NewProcessor(blobs blob.Store) *Processor {
	return &Processor{blobs: blobs}
}

// Upload stores data as the new original picture of contactID and derives
// one thumbnail per entry of Sizes. It returns the key of the original.
func (p *Processor) Upload(ctx context.Context, contactID models.ContactID, data []byte) (string, error) {
	if len(data) > MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrUnsupportedImage, len(data), MaxUploadBytes)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return "", fmt.Errorf("%w: %dx%d pixels", ErrUnsupportedImage, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	var ext string
	switch format {
	case "jpeg":
		ext = ".jpg"
	case "png":
		ext = ".png"
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}

	key := fmt.Sprintf("avatars/%s/%s%s", contactID, uuid.New().String(), ext)
	if err := p.blobs.Put(ctx, key, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, size := range Sizes {
		g.Go(func() error {
			out, err := thumbnail(img, size, format)
			if err != nil {
				return err
			}
			return p.blobs.Put(gctx, models.ResizedKey(key, size), &out)
		})
	}
	if err := g.Wait(); err != nil {
		p.Remove(ctx, key)
		return "", fmt.Errorf("failed to store avatar thumbnails: %w", err)
	}

	slog.Info("Avatar stored", "contact_id", contactID, "key", key)
	return key, nil
}

// Remove deletes an original and its thumbnails. Failures are logged only.
func (p *Processor) Remove(ctx context.Context, key string) {
	if strings.TrimSpace(key) == "" {
		return
	}
	keys := []string{key}
	for _, size := range Sizes {
		keys = append(keys, models.ResizedKey(key, size))
	}
	for _, k := range keys {
		if err := p.blobs.Delete(ctx, k); err != nil {
			slog.Warn("Failed to delete avatar blob (ignored)", "key", k, "error", err)
		}
	}
}

// thumbnail center-crops img to a square and scales it to size x size,
// encoded in the original format.
func thumbnail(img image.Image, size int, format string) (bytes.Buffer, error) {
	var out bytes.Buffer

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var err error
	if format == "png" {
		err = png.Encode(&out, dst)
	} else {
		err = jpeg.Encode(&out, dst, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return out, fmt.Errorf("encode %s: %w", format, err)
	}
	return out, nil
}
