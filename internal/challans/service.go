package challans

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/shared"
)

type Service struct {
	repo     Repository
	orders   orders.Repository
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, orderRepo orders.Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		orders:   orderRepo,
		validate: validator.New(),
		log:      log,
	}
}

// Create records a new challan and, when its PO number names a Pending
// job order, promotes that order to In Progress as part of the same
// operation. A PO number matching no order is accepted as-is.
func (s *Service) Create(ctx context.Context, req CreateChallanRequest) (DeliveryChallan, error) {
	if err := s.validate.Struct(req); err != nil {
		return DeliveryChallan{}, fmt.Errorf("validate challan: %w", err)
	}
	challan := DeliveryChallan{
		Date:             req.Date,
		PONumber:         req.PONumber,
		PODate:           req.PODate,
		BilledTo:         req.BilledTo,
		ShippedTo:        req.ShippedTo,
		GoodsDescription: req.GoodsDescription,
		HSNCode:          req.HSNCode,
		FinishedQty:      req.FinishedQty,
		UOM:              req.UOM,
		DamageQty:        req.DamageQty,
		RatePerPiece:     req.RatePerPiece,
		Remark:           req.Remark,
	}
	created, err := s.repo.Create(ctx, challan)
	if err != nil {
		return DeliveryChallan{}, fmt.Errorf("create challan: %w", err)
	}

	order, err := s.orders.GetByNumber(ctx, created.PONumber)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		s.log.DebugContext(ctx, "challan references unknown job order", "po_number", created.PONumber)
	case err != nil:
		return DeliveryChallan{}, fmt.Errorf("look up job order: %w", err)
	case order.Status == orders.StatusPending:
		if err := s.orders.UpdateStatus(ctx, []string{order.ID}, orders.StatusInProgress); err != nil {
			return DeliveryChallan{}, fmt.Errorf("promote job order: %w", err)
		}
		s.log.InfoContext(ctx, "job order promoted", "job_order_no", order.JobOrderNo, "challan_no", created.ChallanNo)
	}

	return created, nil
}

func (s *Service) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.Delete(ctx, ids)
}

func (s *Service) Get(ctx context.Context, id string) (DeliveryChallan, error) {
	if id == "" {
		return DeliveryChallan{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// List returns challans matching req, preserving insertion order.
func (s *Service) List(ctx context.Context, req ListChallansRequest) ([]DeliveryChallan, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []DeliveryChallan
	for _, c := range all {
		if !shared.ContainsFold(c.ChallanNo, req.Search) &&
			!shared.ContainsFold(c.PONumber, req.Search) &&
			!shared.ContainsFold(c.GoodsDescription, req.Search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
