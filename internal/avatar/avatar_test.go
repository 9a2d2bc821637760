package avatar

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rolodex/internal/blob"
	"github.com/mmynk/rolodex/internal/models"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func decodeBlob(t *testing.T, store blob.Store, key string) (image.Image, string) {
	t.Helper()
	rc, err := store.Open(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	img, format, err := image.Decode(rc)
	require.NoError(t, err)
	return img, format
}

func TestUploadJPEG(t *testing.T) {
	store, err := blob.NewLocal(t.TempDir(), "http://localhost/blobs")
	require.NoError(t, err)
	p := NewProcessor(store)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(300, 200), nil))

	key, err := p.Upload(context.Background(), models.ContactID("c1"), buf.Bytes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "avatars/c1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	original, _ := decodeBlob(t, store, key)
	assert.Equal(t, 300, original.Bounds().Dx(), "original is kept as uploaded")

	for _, size := range Sizes {
		img, format := decodeBlob(t, store, models.ResizedKey(key, size))
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestUploadPNGKeepsFormat(t *testing.T) {
	store, err := blob.NewLocal(t.TempDir(), "http://localhost/blobs")
	require.NoError(t, err)
	p := NewProcessor(store)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(120, 400)))

	key, err := p.Upload(context.Background(), models.ContactID("c2"), buf.Bytes())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))

	img, format := decodeBlob(t, store, models.ResizedKey(key, 174))
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 174, 174), img.Bounds())
}

func TestUploadRejectsGarbage(t *testing.T) {
	store, err := blob.NewLocal(t.TempDir(), "http://localhost/blobs")
	require.NoError(t, err)

	_, err = NewProcessor(store).Upload(context.Background(), models.ContactID("c3"), []byte("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

// withDimensions rewrites the IHDR of a PNG so its header claims w x h.
func withDimensions(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	require.Equal(t, "IHDR", string(data[12:16]))
	out := bytes.Clone(data)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestUploadRejectsOversizedImages(t *testing.T) {
	root := t.TempDir()
	store, err := blob.NewLocal(root, "http://localhost/blobs")
	require.NoError(t, err)
	p := NewProcessor(store)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(1, 1)))

	_, err = p.Upload(context.Background(), models.ContactID("c5"), withDimensions(t, buf.Bytes(), 60000, 60000))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = p.Upload(context.Background(), models.ContactID("c5"), make([]byte, MaxUploadBytes+1))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is stored for rejected uploads")
}

func TestRemove(t *testing.T) {
	store, err := blob.NewLocal(t.TempDir(), "http://localhost/blobs")
	require.NoError(t, err)
	p := NewProcessor(store)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(50, 50)))
	key, err := p.Upload(context.Background(), models.ContactID("c4"), buf.Bytes())
	require.NoError(t, err)

	p.Remove(context.Background(), key)
	for _, k := range []string{key, models.ResizedKey(key, 110), models.ResizedKey(key, 174)} {
		_, err := store.Open(context.Background(), k)
		assert.Error(t, err, k)
	}
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, ColorFor("abc"), ColorFor("abc"))
	assert.Contains(t, Colors, ColorFor("some contact id"))
}
