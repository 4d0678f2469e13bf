package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/domain"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/repository"
	resolveDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/domain"
	"github.com/samber/lo"
)

const feedSize = 50

// Service keeps the resolution activity log and renders it as an RSS feed
// for operators. Records hold request metadata only, never the relayed
// content itself.
type Service struct {
	repo repository.Repository
}

// New creates a new activity service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Track records the outcome of one resolved reference. Failures to write
// the log are logged and swallowed; the relay itself must not depend on it.
func (s *Service) Track(res resolveDomain.Resolution, requestedBy int64) {
	record := &domain.Record{
		ID:          time.Now().UnixNano(),
		Link:        res.Reference.CanonicalLink(),
		ChannelKey:  res.Reference.ChannelKey,
		MessageID:   res.Reference.MessageID,
		Outcome:     outcomeOf(res),
		Identity:    string(res.Identity),
		CacheHit:    res.CacheHit,
		RequestedBy: requestedBy,
		At:          time.Now(),
	}
	if res.Content != nil {
		record.ContentKind = string(res.Content.Kind)
	}

	if err := s.repo.SaveRecord(record); err != nil {
		slog.Error("Failed to save activity record", "error", err, "link", record.Link)
	}
}

func outcomeOf(res resolveDomain.Resolution) domain.Outcome {
	if res.OK() {
		return domain.OutcomeOk
	}
	switch res.Failure.Kind {
	case resolveDomain.FailureKindTransient:
		return domain.OutcomeTransient
	case resolveDomain.FailureKindConfiguration:
		return domain.OutcomeConfiguration
	default:
		return domain.OutcomePermanent
	}
}

// GetRecent returns the latest records, newest first.
func (s *Service) GetRecent(limit int) ([]*domain.Record, error) {
	return s.repo.GetRecent(limit)
}

// GenerateFeed renders recent activity as an RSS feed.
func (s *Service) GenerateFeed(baseURL string) (*feeds.Feed, error) {
	records, err := s.repo.GetRecent(feedSize)
	if err != nil {
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       "Restricted Relay - Activity",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/activity", baseURL)},
		Description: "Recent message resolution outcomes",
		Created:     time.Now(),
	}

	feed.Items = lo.Map(records, func(record *domain.Record, _ int) *feeds.Item {
		title := fmt.Sprintf("[%s] %s", record.Outcome, record.Link)
		description := fmt.Sprintf("outcome=%s identity=%s cache_hit=%t", record.Outcome, record.Identity, record.CacheHit)
		if record.ContentKind != "" {
			description += " kind=" + record.ContentKind
		}

		return &feeds.Item{
			Title:       title,
			Link:        &feeds.Link{Href: record.Link},
			Description: description,
			Created:     record.At,
			Id:          fmt.Sprintf("%d", record.ID),
		}
	})

	return feed, nil
}
