package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// AdminService implements platform administration over user accounts.
type AdminService struct {
	users ports.UserAdminRepository
	log   zerolog.Logger
}

func NewAdminService(users ports.UserAdminRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) (*ports.ListUsersResult, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *AdminService) ChangeRole(ctx context.Context, userID, role string) error {
	if !domain.ValidRole(role) {
		return fmt.Errorf("unknown role %q", role)
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Msg("user role changed")
	return nil
}

func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("user account deleted")
	return nil
}
