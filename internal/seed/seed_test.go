package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-erp/threadline/internal/challans"
	"github.com/threadline-erp/threadline/internal/clients"
	"github.com/threadline-erp/threadline/internal/invoices"
	"github.com/threadline-erp/threadline/internal/orders"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	clientRepo := clients.NewRepository()
	orderRepo := orders.NewRepository()
	challanRepo := challans.NewRepository()
	invoiceRepo := invoices.NewRepository()

	clientSvc := clients.NewService(clientRepo)
	orderSvc := orders.NewService(orderRepo, challanRepo, nil)
	challanSvc := challans.NewService(challanRepo, orderRepo, nil)
	invoiceSvc := invoices.NewService(invoiceRepo, nil)

	require.NoError(t, Load(ctx, clientSvc, orderSvc, challanSvc, invoiceSvc))

	clientList, err := clientSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, clientList, 3)
	assert.Equal(t, "Fashion Forward Inc.", clientList[0].Name)

	orderList, err := orderSvc.List(ctx, orders.ListJobOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, orderList, 3)
	assert.Equal(t, "JO-001", orderList[0].JobOrderNo)
	assert.Equal(t, "JO-003", orderList[2].JobOrderNo)

	challanList, err := challanSvc.List(ctx, challans.ListChallansRequest{})
	require.NoError(t, err)
	require.Len(t, challanList, 2)
	assert.Equal(t, "DC-001", challanList[0].ChallanNo)

	invoiceList, err := invoiceSvc.List(ctx, invoices.ListInvoicesRequest{})
	require.NoError(t, err)
	require.Len(t, invoiceList, 2)
	assert.Equal(t, "INV-001", invoiceList[0].InvoiceNo)
}

func TestLoadSeedsDocumentPartySnapshots(t *testing.T) {
	ctx := context.Background()

	clientSvc := clients.NewService(clients.NewRepository())
	orderRepo := orders.NewRepository()
	challanRepo := challans.NewRepository()
	orderSvc := orders.NewService(orderRepo, challanRepo, nil)
	challanSvc := challans.NewService(challanRepo, orderRepo, nil)
	invoiceSvc := invoices.NewService(invoices.NewRepository(), nil)

	require.NoError(t, Load(ctx, clientSvc, orderSvc, challanSvc, invoiceSvc))

	challanList, err := challanSvc.List(ctx, challans.ListChallansRequest{})
	require.NoError(t, err)
	require.Len(t, challanList, 2)
	assert.Equal(t, "Fashion Forward Inc.", challanList[0].BilledTo.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", challanList[0].BilledTo.GSTIN)
	assert.Equal(t, "Trendy Threads", challanList[1].BilledTo.Name)
}

func TestVendorsAndUOMOptions(t *testing.T) {
	assert.Len(t, Vendors(), 5)
	assert.Contains(t, Vendors(), "ABC Textiles")
	assert.Equal(t, []string{"Pieces", "Sets", "Meters", "Kg"}, UOMOptions())
}
