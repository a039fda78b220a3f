package clients

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/threadline-erp/threadline/internal/shared"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Client, error) {
	if id == "" {
		return Client{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return Client{}, fmt.Errorf("validate client: %w", err)
	}
	client := Client{
		Name:          req.Name,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
	}
	return s.repo.Create(ctx, client)
}

func (s *Service) Update(ctx context.Context, client Client) error {
	return s.repo.Update(ctx, client)
}

func (s *Service) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.Delete(ctx, ids)
}

// Snapshot returns the party details captured onto documents billed to
// this client.
func (c Client) Snapshot() shared.PartyDetails {
	return shared.PartyDetails{
		Name:    c.Name,
		Address: c.Address,
		GSTIN:   c.GSTIN,
	}
}
