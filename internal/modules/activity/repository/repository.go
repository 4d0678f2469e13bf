package repository

import (
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/domain"
)

// Repository defines the interface for activity record persistence
type Repository interface {
	SaveRecord(record *domain.Record) error
	GetRecent(limit int) ([]*domain.Record, error)
}
