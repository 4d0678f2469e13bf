package service

import (
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
)

// Normalize maps a retrieved platform message onto the closed set of
// deliverable kinds. It is total: every message, including nil and
// unsupported payloads, maps to exactly one kind. Captions are carried
// into Body verbatim.
func Normalize(msg *models.Message, src linkDomain.Reference) domain.Content {
	if msg == nil {
		return domain.Content{Kind: domain.KindEmpty, Source: src}
	}

	switch {
	case len(msg.Photo) > 0:
		// Sizes are ordered smallest first; deliver the largest
		photo := msg.Photo[len(msg.Photo)-1]
		return domain.Content{
			Kind:   domain.KindPhoto,
			Body:   msg.Caption,
			FileID: photo.FileID,
			Source: src,
		}

	case msg.Video != nil:
		return domain.Content{
			Kind:   domain.KindVideo,
			Body:   msg.Caption,
			FileID: msg.Video.FileID,
			Source: src,
		}

	case msg.Audio != nil:
		return domain.Content{
			Kind:   domain.KindAudio,
			Body:   msg.Caption,
			FileID: msg.Audio.FileID,
			Source: src,
		}

	case msg.Voice != nil:
		return domain.Content{
			Kind:   domain.KindAudio,
			Body:   msg.Caption,
			FileID: msg.Voice.FileID,
			Source: src,
		}

	case msg.Document != nil:
		return domain.Content{
			Kind:     domain.KindDocument,
			Body:     msg.Caption,
			FileID:   msg.Document.FileID,
			FileName: msg.Document.FileName,
			Source:   src,
		}

	case msg.Text != "" && hasPreview(msg):
		return domain.Content{
			Kind:       domain.KindWebPreview,
			Body:       msg.Text,
			PreviewURL: *msg.LinkPreviewOptions.URL,
			Source:     src,
		}

	case msg.Text != "":
		return domain.Content{
			Kind:   domain.KindText,
			Body:   msg.Text,
			Source: src,
		}
	}

	return domain.Content{Kind: domain.KindEmpty, Source: src}
}

func hasPreview(msg *models.Message) bool {
	return msg.LinkPreviewOptions != nil &&
		msg.LinkPreviewOptions.URL != nil &&
		*msg.LinkPreviewOptions.URL != ""
}
