package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/threadline-erp/threadline/internal/shared"
)

// ChallanSource reports delivered quantity against an order number. It is
// implemented by the challan repository; the indirection keeps this
// package from depending on challans while letting edits refresh the
// stored CompletedQty cache.
type ChallanSource interface {
	FinishedQuantityByOrder(ctx context.Context, jobOrderNo string) (float64, error)
}

type Service struct {
	repo     Repository
	challans ChallanSource
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, challans ChallanSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		challans: challans,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, req CreateJobOrderRequest) (JobOrder, error) {
	if err := s.validate.Struct(req); err != nil {
		return JobOrder{}, fmt.Errorf("validate job order: %w", err)
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return JobOrder{}, fmt.Errorf("unknown status %q", status)
	}
	order := JobOrder{
		Date:             req.Date,
		VendorName:       req.VendorName,
		GoodsDescription: req.GoodsDescription,
		Color:            req.Color,
		Quantity:         req.Quantity,
		UOM:              req.UOM,
		CompletedQty:     req.CompletedQty,
		DamageQty:        req.DamageQty,
		Status:           status,
		Remark:           req.Remark,
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return JobOrder{}, fmt.Errorf("create job order: %w", err)
	}
	s.log.InfoContext(ctx, "job order created", "job_order_no", created.JobOrderNo, "vendor", created.VendorName)
	return created, nil
}

// Update replaces the stored order. The CompletedQty cache is refreshed
// from challans the way the edit form did; unknown ids stay a silent
// no-op at the repository.
func (s *Service) Update(ctx context.Context, order JobOrder) error {
	if !order.Status.Valid() {
		return fmt.Errorf("unknown status %q", order.Status)
	}
	if s.challans != nil {
		qty, err := s.challans.FinishedQuantityByOrder(ctx, order.JobOrderNo)
		if err != nil {
			return fmt.Errorf("refresh completed quantity: %w", err)
		}
		order.CompletedQty = qty
	}
	return s.repo.Update(ctx, order)
}

func (s *Service) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	s.log.InfoContext(ctx, "job orders deleted", "count", len(ids))
	return s.repo.Delete(ctx, ids)
}

func (s *Service) UpdateStatus(ctx context.Context, ids []string, status Status) error {
	if len(ids) == 0 {
		return nil
	}
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	return s.repo.UpdateStatus(ctx, ids, status)
}

func (s *Service) Get(ctx context.Context, id string) (JobOrder, error) {
	if id == "" {
		return JobOrder{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// List returns orders matching req, preserving insertion order.
func (s *Service) List(ctx context.Context, req ListJobOrdersRequest) ([]JobOrder, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []JobOrder
	for _, o := range all {
		if req.Vendor != "" && o.VendorName != req.Vendor {
			continue
		}
		if req.Status != "" && o.Status != req.Status {
			continue
		}
		if !shared.ContainsFold(o.JobOrderNo, req.Search) &&
			!shared.ContainsFold(o.GoodsDescription, req.Search) &&
			!shared.ContainsFold(o.Color, req.Search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
