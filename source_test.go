package pinchzoom

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	for _, ft := range []string{"png", "image/png"} {
		img, meta, err := DecodeImage(bytes.NewReader(encodePNG(t, 40, 20)), "mem/photo.png", ft)
		if err != nil {
			t.Fatalf("DecodeImage(%q): %v", ft, err)
		}
		if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
			t.Errorf("bounds = %v, want 40x20", img.Bounds())
		}
		want := Image{Src: "mem/photo.png", Alt: "photo.png", NaturalWidth: 40, NaturalHeight: 20, FileType: "png"}
		if meta != want {
			t.Errorf("meta = %+v, want %+v", meta, want)
		}
	}
}

func TestDecodeImageErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		fileType    string
		unsupported bool
	}{
		{"pdf", []byte("%PDF"), "pdf", true},
		{"svg", []byte("<svg/>"), "svg", true},
		{"garbage png", []byte("definitely not a png"), "png", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeImage(bytes.NewReader(tt.data), "x", tt.fileType)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrUnsupportedFileType) != tt.unsupported {
				t.Errorf("errors.Is(ErrUnsupportedFileType) = %v, want %v (%v)", !tt.unsupported, tt.unsupported, err)
			}
		})
	}
}

func TestDecodeImageShrinksHugeImages(t *testing.T) {
	img, meta, err := DecodeImage(bytes.NewReader(encodePNG(t, MaxTextureSize+904, 10)), "wide.png", "png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != MaxTextureSize {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), MaxTextureSize)
	}
	if meta.NaturalWidth != MaxTextureSize+904 {
		t.Errorf("NaturalWidth = %v, want the original width", meta.NaturalWidth)
	}
}

func TestOpenImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.PNG")
	if err := os.WriteFile(path, encodePNG(t, 30, 60), 0o644); err != nil {
		t.Fatal(err)
	}
	_, meta, err := OpenImage(path)
	if err != nil {
		t.Fatalf("OpenImage: %v", err)
	}
	if meta.NaturalWidth != 30 || meta.NaturalHeight != 60 || meta.FileType != "png" {
		t.Errorf("meta = %+v", meta)
	}

	if _, _, err := OpenImage(filepath.Join(dir, "scan.tiff")); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("OpenImage(tiff) error = %v, want ErrUnsupportedFileType", err)
	}
	if _, _, err := OpenImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("OpenImage of a missing file succeeded")
	}
}
