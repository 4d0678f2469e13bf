package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	contentDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/domain"
	resolveDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/domain"
)

// Platform limits: 4096 chars per message, 1024 per caption. Text is
// chunked a bit below the hard limit, captions are clamped.
const (
	maxMessageLen = 4000
	maxCaptionLen = 1024
)

const (
	permanentFailureText     = "❌ Could not access the message. It might be from a private channel or the message doesn't exist."
	transientFailureText     = "⚠️ Temporary error while fetching the message. Please try again in a moment."
	configurationFailureText = "🔒 Accessing this message requires the privileged identity, which is not configured."
	emptyContentText         = "❌ No content found in the message."
)

// deliver sends one resolution outcome back to the requesting chat.
func (h *Handler) deliver(ctx context.Context, b *bot.Bot, chatID int64, replyTo int, res resolveDomain.Resolution) {
	if !res.OK() {
		h.sendText(ctx, b, chatID, replyTo, failureText(res.Failure))
		return
	}

	content := *res.Content
	switch content.Kind {
	case contentDomain.KindText:
		h.sendText(ctx, b, chatID, replyTo, content.Body)

	case contentDomain.KindWebPreview:
		text := content.Body
		if content.PreviewURL != "" {
			text += "\n\n🔗 " + content.PreviewURL
		}
		h.sendText(ctx, b, chatID, replyTo, text)

	case contentDomain.KindEmpty:
		h.sendText(ctx, b, chatID, replyTo, emptyContentText)

	default:
		if err := h.sendMedia(ctx, b, chatID, replyTo, content); err != nil {
			slog.Error("Media delivery failed, falling back to text",
				"error", err, "chat_id", chatID, "kind", content.Kind)
			fallback := "❌ Media could not be sent"
			if content.Body != "" {
				fallback += ", but here's the text:\n\n" + content.Body
			} else {
				fallback += "."
			}
			h.sendText(ctx, b, chatID, replyTo, fallback)
		}
	}
}

func failureText(failure *resolveDomain.Failure) string {
	switch failure.Kind {
	case resolveDomain.FailureKindTransient:
		return transientFailureText
	case resolveDomain.FailureKindConfiguration:
		return configurationFailureText
	default:
		return permanentFailureText
	}
}

func (h *Handler) sendText(ctx context.Context, b *bot.Bot, chatID int64, replyTo int, text string) {
	for _, chunk := range splitText(text, maxMessageLen) {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			Text:            chunk,
			ReplyParameters: &models.ReplyParameters{MessageID: replyTo},
		}); err != nil {
			slog.Error("Failed to send message", "error", err, "chat_id", chatID)
			return
		}
	}
}

func (h *Handler) sendMedia(ctx context.Context, b *bot.Bot, chatID int64, replyTo int, content contentDomain.Content) error {
	caption := clampCaption(content.Body)
	file := &models.InputFileString{Data: content.FileID}
	reply := &models.ReplyParameters{MessageID: replyTo}

	var err error
	switch content.Kind {
	case contentDomain.KindPhoto:
		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID, Photo: file, Caption: caption, ReplyParameters: reply,
		})
	case contentDomain.KindVideo:
		_, err = b.SendVideo(ctx, &bot.SendVideoParams{
			ChatID: chatID, Video: file, Caption: caption, ReplyParameters: reply,
		})
	case contentDomain.KindAudio:
		_, err = b.SendAudio(ctx, &bot.SendAudioParams{
			ChatID: chatID, Audio: file, Caption: caption, ReplyParameters: reply,
		})
	default:
		_, err = b.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID: chatID, Document: file, Caption: caption, ReplyParameters: reply,
		})
	}
	return err
}

// splitText chunks text into rune-safe pieces of at most maxLen runes.
// Empty text yields a single empty chunk so callers always send something.
func splitText(text string, maxLen int) []string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		n := maxLen
		if len(runes) < n {
			n = len(runes)
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}

// clampCaption cuts a caption down to the platform limit, marking the cut
// with an ellipsis.
func clampCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= maxCaptionLen {
		return caption
	}
	return string(runes[:maxCaptionLen-3]) + "..."
}
