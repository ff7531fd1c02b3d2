// Package payload decodes inline image payloads: base64 text, optionally
// carrying a data-URI prefix, bounded by the size range the external vision
// service accepts.
package payload

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

const (
	// MinInlineSize is the smallest decoded payload the service accepts.
	MinInlineSize = 1 << 10 // 1 KB
	// MaxInlineSize is the largest decoded payload the service accepts.
	MaxInlineSize = 6 << 20 // 6 MB
)

// DecodeInline strips an optional "data:<mime>;base64," prefix, decodes the
// remainder, and enforces the inclusive [MinInlineSize, MaxInlineSize]
// bound. Violations are client errors; nothing is forwarded upstream.
func DecodeInline(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(StripPrefix(data))
	if err != nil {
		return nil, domain.ErrInvalidImageData.WithError(err)
	}

	if len(raw) < MinInlineSize {
		return nil, domain.ErrImageTooSmall.WithError(
			fmt.Errorf("decoded payload is %d bytes, minimum is %d", len(raw), MinInlineSize))
	}
	if len(raw) > MaxInlineSize {
		return nil, domain.ErrImageTooLarge.WithError(
			fmt.Errorf("decoded payload is %d bytes, maximum is %d", len(raw), MaxInlineSize))
	}

	return raw, nil
}

// StripPrefix removes a data-URI scheme prefix ("data:image/jpeg;base64,")
// when present. Payloads without a prefix pass through unchanged.
func StripPrefix(data string) string {
	data = strings.TrimSpace(data)
	if !strings.HasPrefix(data, "data:") {
		return data
	}
	if i := strings.IndexByte(data, ','); i >= 0 {
		return data[i+1:]
	}
	return data
}
