package invoices

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/threadline-erp/threadline/internal/shared"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	if err := s.validate.Struct(req); err != nil {
		return Invoice{}, fmt.Errorf("validate invoice: %w", err)
	}
	invoice := Invoice{
		Date:             req.Date,
		PONumber:         req.PONumber,
		PODate:           req.PODate,
		BilledTo:         req.BilledTo,
		ShippedTo:        req.ShippedTo,
		GoodsDescription: req.GoodsDescription,
		HSNCode:          req.HSNCode,
		ChallanQty:       req.ChallanQty,
		UOM:              req.UOM,
		RatePerPiece:     req.RatePerPiece,
		Remark:           req.Remark,
	}
	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	s.log.InfoContext(ctx, "invoice created", "invoice_no", created.InvoiceNo, "total", Amounts(created).TotalAmount)
	return created, nil
}

func (s *Service) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.Delete(ctx, ids)
}

func (s *Service) Get(ctx context.Context, id string) (Invoice, error) {
	if id == "" {
		return Invoice{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// List returns invoices matching req, preserving insertion order.
func (s *Service) List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Invoice
	for _, inv := range all {
		if !shared.ContainsFold(inv.InvoiceNo, req.Search) &&
			!shared.ContainsFold(inv.PONumber, req.Search) &&
			!shared.ContainsFold(inv.GoodsDescription, req.Search) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}
