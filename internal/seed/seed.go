// Package seed loads the bootstrap dataset for a fresh session. Records
// go through the regular services so document numbering and side effects
// behave exactly as they do for user-entered data.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/threadline-erp/threadline/internal/challans"
	"github.com/threadline-erp/threadline/internal/clients"
	"github.com/threadline-erp/threadline/internal/invoices"
	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/shared"
)

// Vendors returns the vendor master list offered on job-order forms.
func Vendors() []string {
	return []string{
		"ABC Textiles",
		"XYZ Garments",
		"Sewing Masters Co.",
		"Fabric World",
		"Quality Threads Ltd.",
	}
}

// UOMOptions returns the units of measure offered on document forms.
func UOMOptions() []string {
	return []string{"Pieces", "Sets", "Meters", "Kg"}
}

// Clients returns the bootstrap client directory.
func Clients() []clients.CreateClientRequest {
	return []clients.CreateClientRequest{
		{
			Name:          "Fashion Forward Inc.",
			Address:       "123 Fashion Ave, Garment City, 110001",
			GSTIN:         "29ABCDE1234F1Z5",
			ContactPerson: "John Doe",
			Email:         "john.doe@fashionforward.com",
			Phone:         "9876543210",
		},
		{
			Name:          "Trendy Threads",
			Address:       "456 Style St, Apparel Town, 110002",
			GSTIN:         "29FGHIJ5678K2Z6",
			ContactPerson: "Jane Smith",
			Email:         "jane.smith@trendythreads.com",
			Phone:         "8765432109",
		},
		{
			Name:          "Classic Couture",
			Address:       "789 Elegance Blvd, Fashion District, 110003",
			GSTIN:         "29LMNOP9012Q3Z7",
			ContactPerson: "Robert Brown",
			Email:         "robert.brown@classiccouture.com",
			Phone:         "7654321098",
		},
	}
}

// Load populates a fresh session with the sample dataset. It expects
// empty collections; numbering starts at JO-001 / DC-001 / INV-001.
func Load(
	ctx context.Context,
	clientSvc *clients.Service,
	orderSvc *orders.Service,
	challanSvc *challans.Service,
	invoiceSvc *invoices.Service,
) error {
	var parties []shared.PartyDetails
	for _, req := range Clients() {
		client, err := clientSvc.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed client %q: %w", req.Name, err)
		}
		parties = append(parties, client.Snapshot())
	}

	orderReqs := []orders.CreateJobOrderRequest{
		{
			Date:             date(2024, 7, 1),
			VendorName:       "ABC Textiles",
			GoodsDescription: "Cotton T-Shirts",
			Color:            "White",
			Quantity:         500,
			UOM:              "Pieces",
			CompletedQty:     300,
			DamageQty:        5,
			Status:           orders.StatusInProgress,
		},
		{
			Date:             date(2024, 7, 2),
			VendorName:       "XYZ Garments",
			GoodsDescription: "Denim Jeans",
			Color:            "Blue",
			Quantity:         200,
			UOM:              "Pieces",
			CompletedQty:     200,
			DamageQty:        2,
			Status:           orders.StatusCompleted,
			Remark:           "Urgent order",
		},
		{
			Date:             date(2024, 7, 3),
			VendorName:       "Sewing Masters Co.",
			GoodsDescription: "Polo Shirts",
			Color:            "Black",
			Quantity:         300,
			UOM:              "Pieces",
			Status:           orders.StatusPending,
		},
	}
	var orderNos []string
	for _, req := range orderReqs {
		order, err := orderSvc.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed job order: %w", err)
		}
		orderNos = append(orderNos, order.JobOrderNo)
	}

	challanReqs := []challans.CreateChallanRequest{
		{
			Date:             date(2024, 7, 10),
			PONumber:         orderNos[0],
			PODate:           date(2024, 7, 1),
			BilledTo:         parties[0],
			ShippedTo:        parties[0],
			GoodsDescription: "Cotton T-Shirts",
			HSNCode:          "6109",
			FinishedQty:      300,
			UOM:              "Pieces",
			RatePerPiece:     250,
		},
		{
			Date:             date(2024, 7, 8),
			PONumber:         orderNos[1],
			PODate:           date(2024, 7, 2),
			BilledTo:         parties[1],
			ShippedTo:        parties[1],
			GoodsDescription: "Denim Jeans",
			HSNCode:          "6203",
			FinishedQty:      200,
			UOM:              "Pieces",
			RatePerPiece:     800,
		},
	}
	for _, req := range challanReqs {
		if _, err := challanSvc.Create(ctx, req); err != nil {
			return fmt.Errorf("seed challan: %w", err)
		}
	}

	invoiceReqs := []invoices.CreateInvoiceRequest{
		{
			Date:             date(2024, 7, 11),
			PONumber:         orderNos[0],
			PODate:           date(2024, 7, 1),
			BilledTo:         parties[0],
			ShippedTo:        parties[0],
			GoodsDescription: "Cotton T-Shirts",
			HSNCode:          "6109",
			ChallanQty:       300,
			UOM:              "Pieces",
			RatePerPiece:     250,
		},
		{
			Date:             date(2024, 7, 9),
			PONumber:         orderNos[1],
			PODate:           date(2024, 7, 2),
			BilledTo:         parties[1],
			ShippedTo:        parties[1],
			GoodsDescription: "Denim Jeans",
			HSNCode:          "6203",
			ChallanQty:       200,
			UOM:              "Pieces",
			RatePerPiece:     800,
		},
	}
	for _, req := range invoiceReqs {
		if _, err := invoiceSvc.Create(ctx, req); err != nil {
			return fmt.Errorf("seed invoice: %w", err)
		}
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
