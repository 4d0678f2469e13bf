package service

import (
	"time"

	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/user/domain"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/user/repository"
)

// Service handles user authorization
type Service struct {
	repo repository.Repository
}

// New creates a new user service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// IsAuthorized checks whether a user may request relays. A non-empty
// allowed list is authoritative; otherwise any previously saved user
// qualifies.
func (s *Service) IsAuthorized(userID int64, allowedUsers []int64) bool {
	if len(allowedUsers) > 0 {
		for _, id := range allowedUsers {
			if id == userID {
				return true
			}
		}
		return false
	}

	_, err := s.repo.GetUser(userID)
	return err == nil
}

// EnsureFirstAdmin saves the very first user as admin when no allowed
// list is configured. Returns true when the user was admitted.
func (s *Service) EnsureFirstAdmin(userID int64, username string, allowedUsers []int64) (bool, error) {
	if len(allowedUsers) > 0 {
		return false, nil
	}

	count, err := s.repo.CountUsers()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	user := &domain.User{
		ID:       userID,
		Username: username,
		AddedAt:  time.Now(),
		IsAdmin:  true,
	}
	if err := s.repo.SaveUser(user); err != nil {
		return false, err
	}

	return true, nil
}
