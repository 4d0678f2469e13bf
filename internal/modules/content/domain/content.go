package domain

import (
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
)

//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

// Kind is the deliverable content kind of a normalized message
// ENUM(text,photo,video,audio,document,web_preview,empty)
type Kind string

// Content is the canonical deliverable unit produced from a retrieved
// platform message. Body holds the text or caption verbatim. FileID is the
// opaque media handle and is empty for text, web_preview and empty kinds.
type Content struct {
	Kind       Kind
	Body       string
	FileID     string
	FileName   string
	PreviewURL string
	Source     linkDomain.Reference
}

// HasMedia reports whether delivery needs a media handle.
func (c Content) HasMedia() bool {
	return c.FileID != ""
}
