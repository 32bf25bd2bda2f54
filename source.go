package pinchzoom

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register bmp decoder
	_ "golang.org/x/image/webp" // register webp decoder
)

// MaxTextureSize is the largest width or height a decoded image keeps.
// Bigger images are shrunk to fit, preserving their aspect ratio.
const MaxTextureSize = 4096

// ErrUnsupportedFileType is returned for file types outside the supported
// image list.
var ErrUnsupportedFileType = errors.New("pinchzoom: unsupported file type")

// OpenImage decodes the image file at path, applies its EXIF orientation,
// and returns the pixels together with the metadata a Viewer needs. The file
// type is taken from the extension.
func OpenImage(path string) (image.Image, Image, error) {
	ft := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !IsSupportedFileType(ft) || ft == "svg" {
		return nil, Image{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ft)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, Image{}, fmt.Errorf("pinchzoom: open %s: %w", path, err)
	}
	return finishImage(img, path, ft)
}

// DecodeImage decodes an image of the given file type from r. src is
// recorded as the image source.
func DecodeImage(r io.Reader, src, fileType string) (image.Image, Image, error) {
	ft := strings.TrimPrefix(fileType, "image/")
	if !IsSupportedFileType(ft) || ft == "svg" {
		return nil, Image{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, fileType)
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, Image{}, fmt.Errorf("pinchzoom: decode %s: %w", src, err)
	}
	return finishImage(img, src, ft)
}

func finishImage(img image.Image, src, ft string) (image.Image, Image, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, Image{}, fmt.Errorf("pinchzoom: decode %s: empty image", src)
	}
	meta := Image{
		Src:           src,
		Alt:           filepath.Base(src),
		NaturalWidth:  float64(b.Dx()),
		NaturalHeight: float64(b.Dy()),
		FileType:      ft,
	}
	if b.Dx() > MaxTextureSize || b.Dy() > MaxTextureSize {
		img = imaging.Fit(img, MaxTextureSize, MaxTextureSize, imaging.Lanczos)
	}
	return img, meta, nil
}
