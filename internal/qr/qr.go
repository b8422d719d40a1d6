// Package qr builds references to externally rendered QR code images.
package qr

import (
	"fmt"
	"net/url"
	"strings"
)

// Defaults for the public QR rendering service.
const (
	DefaultBaseURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize    = 150
)

// Builder constructs QR image URLs. The zero value uses the defaults.
type Builder struct {
	BaseURL string
	Size    int
}

// Reference returns the image URL encoding id. No request is made.
func (b Builder) Reference(id string) string {
	base := b.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	size := b.Size
	if size <= 0 {
		size = DefaultSize
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%ssize=%dx%d&data=%s", base, sep, size, size, url.QueryEscape(id))
}

// Reference returns the image URL for id using the default service.
func Reference(id string) string {
	return Builder{}.Reference(id)
}
