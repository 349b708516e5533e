package market

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
)

// ListUsers returns every account
func (s *MarketService) ListUsers(ctx context.Context, p *identity.Principal) ([]model.UserView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return nil, fmt.Errorf("service: list users: %w", err)
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}

	views := make([]model.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.ToView())
	}
	return views, nil
}

// GetUser returns one account by id
func (s *MarketService) GetUser(ctx context.Context, p *identity.Principal, id uint) (model.UserView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.UserView{}, fmt.Errorf("service: get user: %w", err)
	}

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.UserView{}, fmt.Errorf("service: failed to get user %d: %w", id, err)
	}
	return user.ToView(), nil
}

// CreateAdmin registers a new ADMIN account
func (s *MarketService) CreateAdmin(ctx context.Context, p *identity.Principal, in model.NewUser) (model.UserView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.UserView{}, fmt.Errorf("service: create admin: %w", err)
	}

	user, err := identity.NewAccount(in, model.RoleAdmin, s.now())
	if err != nil {
		return model.UserView{}, fmt.Errorf("service: %w", err)
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return model.UserView{}, fmt.Errorf("service: failed to create admin %s: %w", user.Email, err)
	}
	return user.ToView(), nil
}

// UpdateUser applies a partial update to any account
func (s *MarketService) UpdateUser(ctx context.Context, p *identity.Principal, id uint, patch model.UserPatch) (model.UserView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.UserView{}, fmt.Errorf("service: update user: %w", err)
	}
	return s.patchUser(ctx, id, patch)
}

// DeleteUser removes an account
func (s *MarketService) DeleteUser(ctx context.Context, p *identity.Principal, id uint) error {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return fmt.Errorf("service: delete user: %w", err)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete user %d: %w", id, err)
	}
	return nil
}

// GetMe returns the caller's own account
func (s *MarketService) GetMe(ctx context.Context, p *identity.Principal) (model.UserView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.UserView{}, fmt.Errorf("service: get profile: %w", err)
	}

	user, err := s.repo.GetUser(ctx, p.ID)
	if err != nil {
		return model.UserView{}, fmt.Errorf("service: failed to get user %d: %w", p.ID, err)
	}
	return user.ToView(), nil
}

// UpdateMe applies a partial update to the caller's own account
func (s *MarketService) UpdateMe(ctx context.Context, p *identity.Principal, patch model.UserPatch) (model.UserView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.UserView{}, fmt.Errorf("service: update profile: %w", err)
	}
	return s.patchUser(ctx, p.ID, patch)
}

func (s *MarketService) patchUser(ctx context.Context, id uint, patch model.UserPatch) (model.UserView, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.UserView{}, fmt.Errorf("service: failed to get user %d: %w", id, err)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return model.UserView{}, fmt.Errorf("service: %w - empty name", marketerrors.ErrInvalidInput)
		}
		user.Name = name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return model.UserView{}, fmt.Errorf("service: %w - empty email", marketerrors.ErrInvalidInput)
		}
		user.Email = email
	}
	if patch.Password != nil {
		if len(*patch.Password) < 5 {
			return model.UserView{}, fmt.Errorf("service: %w - password must have at least 5 characters", marketerrors.ErrInvalidInput)
		}
		hashed, err := identity.HashPassword(*patch.Password)
		if err != nil {
			return model.UserView{}, fmt.Errorf("service: failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	if patch.Address != nil {
		user.Address = patch.Address
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
	}
	if patch.Img != nil {
		user.Img = patch.Img
	}

	if err := s.repo.UpdateUser(ctx, &user); err != nil {
		return model.UserView{}, fmt.Errorf("service: failed to update user %d: %w", id, err)
	}
	return user.ToView(), nil
}
