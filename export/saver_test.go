package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
)

func solidRedPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDownloadSaver_WritesFileAndExtractsColours(t *testing.T) {
	defer gock.Off()
	payload := solidRedPNG(t)
	gock.New("https://media.slimethis.net").
		Get("/banger.jpg").
		Reply(200).
		Body(bytes.NewReader(payload))

	dir := t.TempDir()
	saver := NewDownloadSaver(&http.Client{}, dir)

	colours, err := saver.Save(context.Background(), "https://media.slimethis.net/banger.jpg", "slime-this-1.jpg")

	assert.NoError(t, err)
	written, err := os.ReadFile(filepath.Join(dir, "slime-this-1.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, payload, written)
	assert.Contains(t, []string(colours), "#ff0000")
}

func TestDownloadSaver_NonImageBytesStillSave(t *testing.T) {
	defer gock.Off()
	gock.New("https://media.slimethis.net").
		Get("/banger.mp4").
		Reply(200).
		BodyString("not an image")

	dir := t.TempDir()
	saver := NewDownloadSaver(&http.Client{}, dir)

	colours, err := saver.Save(context.Background(), "https://media.slimethis.net/banger.mp4", "slime-this-1.mp4")

	assert.NoError(t, err)
	assert.Empty(t, colours)
	_, err = os.Stat(filepath.Join(dir, "slime-this-1.mp4"))
	assert.NoError(t, err)
}

func TestDownloadSaver_BadStatusIsAnError(t *testing.T) {
	defer gock.Off()
	gock.New("https://media.slimethis.net").
		Get("/gone.jpg").
		Persist().
		Reply(404)

	saver := NewDownloadSaver(&http.Client{}, t.TempDir())

	_, err := saver.Save(context.Background(), "https://media.slimethis.net/gone.jpg", "slime-this-1.jpg")

	assert.Error(t, err)
}
