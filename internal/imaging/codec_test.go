package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(40 * x), G: uint8(40 * y), B: 128, A: 255})
		}
	}
	return img
}

func TestReencodePNG_FromJPEG(t *testing.T) {
	var src bytes.Buffer
	if err := jpeg.Encode(&src, testImage(6, 4), nil); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	out, err := ReencodePNG(src.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid png: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 6x4", b)
	}
}

func TestReencodePNG_FromGIF(t *testing.T) {
	var src bytes.Buffer
	if err := gif.Encode(&src, testImage(3, 3), nil); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	out, err := ReencodePNG(src.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("output is not valid png: %v", err)
	}
}

func TestReencodePNG_FromPNG(t *testing.T) {
	fixture := testImage(2, 2)

	var src bytes.Buffer
	if err := png.Encode(&src, fixture); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	out, err := ReencodePNG(src.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid png: %v", err)
	}

	// PNG is lossless, so every pixel must survive the round trip.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := fixture.At(x, y)
			got := color.RGBAModel.Convert(decoded.At(x, y))
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestReencodePNG_Garbage(t *testing.T) {
	_, err := ReencodePNG([]byte("definitely not an image"))
	if !errors.Is(err, ErrUndecodable) {
		t.Errorf("expected ErrUndecodable, got %v", err)
	}
}

func TestReencodePNG_Empty(t *testing.T) {
	_, err := ReencodePNG(nil)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage, got %v", err)
	}
}

func TestReencodeBase64(t *testing.T) {
	var src bytes.Buffer
	if err := jpeg.Encode(&src, testImage(4, 4), nil); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	b64, err := ReencodeBase64(src.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Errorf("decoded payload is not png: %v", err)
	}
}

func TestReencodeBase64_Garbage(t *testing.T) {
	_, err := ReencodeBase64([]byte{0x00, 0x01, 0x02})
	if !errors.Is(err, ErrUndecodable) {
		t.Errorf("expected ErrUndecodable, got %v", err)
	}
}

func TestDataURI(t *testing.T) {
	if got := DataURI("abc123"); got != "data:image/png;base64,abc123" {
		t.Errorf("DataURI = %q", got)
	}
}
