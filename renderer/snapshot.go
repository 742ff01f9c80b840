package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Snapshot reads back the frame drawn by the last RenderFrame. Call it
// before EndFrame presents the back buffer.
func (r *Renderer) Snapshot() (*image.NRGBA, error) {
	width, height := r.context.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		return nil, errors.New("framebuffer is empty")
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels failed: 0x%x", code)
	}
	flipRows(img)
	opaque(img)
	return img, nil
}

// flipRows turns GL's bottom-up rows into image order.
func flipRows(img *image.NRGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// opaque drops the shader's alpha; the window shows the frame opaque too.
func opaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

// SnapshotPath names a snapshot of the shader at source taken at t, in the
// same directory: scene.frag becomes scene-20060102-150405.png.
func SnapshotPath(source string, t time.Time) string {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	return base + "-" + t.Format("20060102-150405") + ".png"
}

// SavePNG writes im to path in PNG format.
func SavePNG(path string, im image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, im); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
