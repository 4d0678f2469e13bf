package service

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	"github.com/stretchr/testify/assert"
)

var testRef = linkDomain.Reference{ChannelKey: "examplechan", MessageID: 42}

func TestNormalize_Text(t *testing.T) {
	c := Normalize(&models.Message{Text: "hello"}, testRef)

	assert.Equal(t, domain.KindText, c.Kind)
	assert.Equal(t, "hello", c.Body)
	assert.False(t, c.HasMedia())
	assert.Equal(t, testRef, c.Source)
}

func TestNormalize_PhotoPicksLargestSize(t *testing.T) {
	msg := &models.Message{
		Photo: []models.PhotoSize{
			{FileID: "small"},
			{FileID: "large"},
		},
		Caption: "a caption",
	}

	c := Normalize(msg, testRef)

	assert.Equal(t, domain.KindPhoto, c.Kind)
	assert.Equal(t, "large", c.FileID)
	assert.Equal(t, "a caption", c.Body)
}

func TestNormalize_Video(t *testing.T) {
	c := Normalize(&models.Message{Video: &models.Video{FileID: "v1"}}, testRef)

	assert.Equal(t, domain.KindVideo, c.Kind)
	assert.Equal(t, "v1", c.FileID)
}

func TestNormalize_Audio(t *testing.T) {
	c := Normalize(&models.Message{Audio: &models.Audio{FileID: "a1"}}, testRef)

	assert.Equal(t, domain.KindAudio, c.Kind)
	assert.Equal(t, "a1", c.FileID)
}

func TestNormalize_VoiceMapsToAudio(t *testing.T) {
	c := Normalize(&models.Message{Voice: &models.Voice{FileID: "vo1"}}, testRef)

	assert.Equal(t, domain.KindAudio, c.Kind)
	assert.Equal(t, "vo1", c.FileID)
}

func TestNormalize_Document(t *testing.T) {
	msg := &models.Message{
		Document: &models.Document{FileID: "d1", FileName: "report.pdf"},
		Caption:  "the report",
	}

	c := Normalize(msg, testRef)

	assert.Equal(t, domain.KindDocument, c.Kind)
	assert.Equal(t, "d1", c.FileID)
	assert.Equal(t, "report.pdf", c.FileName)
	assert.Equal(t, "the report", c.Body)
}

func TestNormalize_WebPreview(t *testing.T) {
	url := "https://example.com/article"
	msg := &models.Message{
		Text:               "look at this",
		LinkPreviewOptions: &models.LinkPreviewOptions{URL: &url},
	}

	c := Normalize(msg, testRef)

	assert.Equal(t, domain.KindWebPreview, c.Kind)
	assert.Equal(t, "look at this", c.Body)
	assert.Equal(t, url, c.PreviewURL)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, domain.KindEmpty, Normalize(nil, testRef).Kind)
	assert.Equal(t, domain.KindEmpty, Normalize(&models.Message{}, testRef).Kind)
}

func TestNormalize_CaptionVerbatim(t *testing.T) {
	caption := "  spaces and\nnewlines kept exactly  "
	msg := &models.Message{
		Photo:   []models.PhotoSize{{FileID: "p"}},
		Caption: caption,
	}

	assert.Equal(t, caption, Normalize(msg, testRef).Body)
}
