// Package imageutil decodes base64 image data URLs and sniffs pixel
// dimensions from raw PNG/JPEG bytes. It reads fixed header fields
// only; it is not an image codec.
package imageutil

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for data URL decoding.
var (
	ErrNotDataURL    = errors.New("not an image data URL")
	ErrInvalidBase64 = errors.New("invalid base64 payload")
)

// Fallback dimensions when header parsing fails.
const (
	FallbackWidth  = 500
	FallbackHeight = 300
)

// Layout bounds for embedded pictures, in points.
const (
	maxLayoutWidth  = 550
	maxLayoutHeight = 320
	minLayoutWidth  = 120
	minLayoutHeight = 90
)

// dataURL matches data:image/<subtype>;base64,<payload>.
var dataURL = regexp.MustCompile(`^data:(image/[A-Za-z0-9.+-]+);base64,(.+)$`)

// DecodeDataURL decodes a base64 image data URL into its media type
// (lowercased) and raw bytes.
func DecodeDataURL(url string) (string, []byte, error) {
	m := dataURL.FindStringSubmatch(url)
	if m == nil {
		return "", nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return strings.ToLower(m[1]), data, nil
}

// Dimensions extracts pixel width and height from raw image bytes.
// PNG reads the IHDR width/height at fixed offsets; JPEG scans marker
// segments for the first start-of-frame. Returns the fixed fallback
// size when the bytes cannot be parsed.
func Dimensions(data []byte, mime string) (width, height int) {
	if strings.Contains(mime, "png") && len(data) >= 24 {
		w := binary.BigEndian.Uint32(data[16:20])
		h := binary.BigEndian.Uint32(data[20:24])
		return int(w), int(h)
	}

	if (strings.Contains(mime, "jpeg") || strings.Contains(mime, "jpg")) && len(data) >= 4 {
		if w, h, ok := jpegDimensions(data); ok {
			return w, h
		}
	}

	return FallbackWidth, FallbackHeight
}

// jpegDimensions walks JPEG marker segments looking for SOF0 or SOF2,
// which carry big-endian height then width.
func jpegDimensions(data []byte) (width, height int, ok bool) {
	offset := 2
	for offset < len(data) {
		if data[offset] != 0xFF {
			offset++
			continue
		}
		if offset+1 >= len(data) {
			break
		}
		marker := data[offset+1]
		if marker == 0xC0 || marker == 0xC2 {
			if offset+9 > len(data) {
				break
			}
			h := binary.BigEndian.Uint16(data[offset+5 : offset+7])
			w := binary.BigEndian.Uint16(data[offset+7 : offset+9])
			return int(w), int(h), true
		}
		if offset+4 > len(data) {
			break
		}
		segLen := binary.BigEndian.Uint16(data[offset+2 : offset+4])
		if segLen == 0 {
			break
		}
		offset += 2 + int(segLen)
	}
	return 0, 0, false
}

// Fit scales pixel dimensions into the document layout box, never
// enlarging and never going below the minimum size.
func Fit(width, height int) (int, int) {
	scale := 1.0
	if width > 0 {
		if s := float64(maxLayoutWidth) / float64(width); s < scale {
			scale = s
		}
	}
	if height > 0 {
		if s := float64(maxLayoutHeight) / float64(height); s < scale {
			scale = s
		}
	}

	w := int(float64(width)*scale + 0.5)
	h := int(float64(height)*scale + 0.5)
	if w < minLayoutWidth {
		w = minLayoutWidth
	}
	if h < minLayoutHeight {
		h = minLayoutHeight
	}
	return w, h
}
