package gg

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/JohnEsleyer/ubevid/text"
)

// Store owns every font and image an Engine has loaded, keyed by the
// caller's chosen name. A font or image decoded once stays decoded for the
// lifetime of the Store; loading under an existing name replaces the prior
// entry.
type Store struct {
	mu     sync.RWMutex
	fonts  map[string]*text.FontSource
	images map[string]*Pixmap
}

// NewStore creates an empty asset store.
func NewStore() *Store {
	return &Store{
		fonts:  make(map[string]*text.FontSource),
		images: make(map[string]*Pixmap),
	}
}

// LoadFont decodes TTF/OTF font data and stores it under name.
func (s *Store) LoadFont(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return &DecodeError{Kind: "font", Name: name, Err: err}
	}

	s.mu.Lock()
	if old, ok := s.fonts[name]; ok {
		_ = old.Close()
	}
	s.fonts[name] = source
	s.mu.Unlock()
	return nil
}

// Font returns the font source stored under name, or nil if absent.
func (s *Store) Font(name string) *text.FontSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fonts[name]
}

// LoadAsset decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF, or WebP)
// and stores it under name as a premultiplied RGBA8 pixmap. FromImage reads
// each source pixel as straight alpha (FromColor un-premultiplies
// color.Color's inherently premultiplied RGBA() output) and Pixmap.SetPixel
// premultiplies on write, so the result is premultiplied exactly once.
func (s *Store) LoadAsset(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyAssetData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return &DecodeError{Kind: "asset", Name: name, Err: err}
	}

	pm := FromImage(img)

	s.mu.Lock()
	s.images[name] = pm
	s.mu.Unlock()
	return nil
}

// LoadAssetRaw stores pre-decoded straight-alpha RGBA8 pixels (4 bytes per
// pixel, row-major, width*height*4 long) under name, premultiplying on the
// way in exactly as LoadAsset does.
func (s *Store) LoadAssetRaw(name string, width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gg: load asset %q: %w (%dx%d)", name, ErrInvalidDimensions, width, height)
	}
	if len(pixels) != width*height*4 {
		return fmt.Errorf("gg: load asset %q: expected %d bytes, got %d", name, width*height*4, len(pixels))
	}

	pm := NewPixmap(width, height)
	copy(pm.Data(), pixels)
	premultiplyPixmap(pm)

	s.mu.Lock()
	s.images[name] = pm
	s.mu.Unlock()
	return nil
}

// Asset returns the pixmap stored under name, or nil if absent.
func (s *Store) Asset(name string) *Pixmap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images[name]
}

// premultiplyPixmap scales each pixel's color channels by its alpha in
// place, byte-exact with the reference ingest formula c <- c*a/255 for
// a != 255 (a==255 pixels are left untouched since the scale is a no-op).
func premultiplyPixmap(pm *Pixmap) {
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		a := uint16(data[i+3])
		if a == 255 {
			continue
		}
		data[i+0] = uint8(uint16(data[i+0]) * a / 255)
		data[i+1] = uint8(uint16(data[i+1]) * a / 255)
		data[i+2] = uint8(uint16(data[i+2]) * a / 255)
	}
}
