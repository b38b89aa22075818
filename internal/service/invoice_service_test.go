package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/config"
	"techinvoice/internal/domain"
	"techinvoice/internal/service"
	"techinvoice/mocks"
)

func testBillingConfig() config.BillingConfig {
	return config.BillingConfig{DefaultTaxRate: 10.0}
}

func newInvoiceService(invoiceRepo *mocks.MockInvoiceRepo, clientRepo *mocks.MockClientRepo) service.InvoiceService {
	return service.NewInvoiceService(invoiceRepo, clientRepo, testBillingConfig())
}

func validInput(clientID uuid.UUID) service.CreateInvoiceInput {
	return service.CreateInvoiceInput{
		ClientID: &clientID,
		Items: []service.InvoiceItemInput{
			{Description: "Consulting", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
	}
}

func TestInvoiceService_Create_DerivesTotals(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID, Name: "Acme"}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	input := validInput(clientID)
	input.DiscountType = "percentage"
	input.DiscountValue = decimal.NewFromInt(10)
	taxRate := decimal.NewFromInt(5)
	input.TaxRate = &taxRate

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, invoice.Discount.Equal(decimal.NewFromInt(10)))
	assert.True(t, invoice.Tax.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, invoice.Total.Equal(decimal.RequireFromString("94.5")))
	assert.Equal(t, domain.StatusPending, invoice.Status)

	invoiceRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_DefaultTaxRate(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	invoice, err := svc.Create(context.Background(), validInput(clientID))

	assert.NoError(t, err)
	assert.True(t, invoice.TaxRate.Equal(decimal.NewFromInt(10)))
	assert.True(t, invoice.Tax.Equal(decimal.NewFromInt(10)))
	assert.True(t, invoice.Total.Equal(decimal.NewFromInt(110)))
}

func TestInvoiceService_Create_DefaultDueDateNet15(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput(clientID)
	input.InvoiceDate = time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.May, 16, 0, 0, 0, 0, time.UTC), invoice.DueDate)
}

func TestInvoiceService_Create_PresetDiscount(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput(clientID)
	input.DiscountType = "preset"
	input.DiscountPreset = "large"

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, invoice.Discount.Equal(decimal.NewFromInt(25)))
	assert.True(t, invoice.DiscountValue.Equal(decimal.NewFromInt(25)))
}

func TestInvoiceService_Create_UnknownPreset(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	input := validInput(uuid.New())
	input.DiscountType = "preset"
	input.DiscountPreset = "mega"

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_InlineClient(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Client).ID = uuid.New()
		}).Return(nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := service.CreateInvoiceInput{
		NewClient: &service.CreateClientInput{Name: "New Co", Email: "new@co.test"},
		Items: []service.InvoiceItemInput{
			{Description: "Setup", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	}

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, invoice.ClientID)
	clientRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_MissingClient(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), new(mocks.MockClientRepo))

	input := service.CreateInvoiceInput{
		Items: []service.InvoiceItemInput{
			{Description: "Setup", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	}

	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_Create_ItemValidation(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), new(mocks.MockClientRepo))
	clientID := uuid.New()

	cases := []struct {
		name string
		item service.InvoiceItemInput
	}{
		{"empty description", service.InvoiceItemInput{Description: "  ", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
		{"zero quantity", service.InvoiceItemInput{Description: "X", Quantity: 0, UnitPrice: decimal.NewFromInt(10)}},
		{"negative quantity", service.InvoiceItemInput{Description: "X", Quantity: -1, UnitPrice: decimal.NewFromInt(10)}},
		{"negative price", service.InvoiceItemInput{Description: "X", Quantity: 1, UnitPrice: decimal.NewFromInt(-10)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := service.CreateInvoiceInput{
				ClientID: &clientID,
				Items:    []service.InvoiceItemInput{tc.item},
			}
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestInvoiceService_Create_NoItems(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), new(mocks.MockClientRepo))
	clientID := uuid.New()

	_, err := svc.Create(context.Background(), service.CreateInvoiceInput{ClientID: &clientID})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_Create_TaxRateOutOfRange(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), new(mocks.MockClientRepo))

	input := validInput(uuid.New())
	taxRate := decimal.NewFromInt(101)
	input.TaxRate = &taxRate

	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_UpdateStatus_Success(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo))

	id := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{ID: id, Status: domain.StatusPending}, nil)
	invoiceRepo.On("UpdateStatus", mock.Anything, id, domain.StatusPaid).Return(nil)

	invoice, err := svc.UpdateStatus(context.Background(), id, service.UpdateStatusInput{Status: "paid"})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, invoice.Status)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_UpdateStatus_ReopenCancelled(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo))

	id := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{ID: id, Status: domain.StatusCancelled}, nil)
	invoiceRepo.On("UpdateStatus", mock.Anything, id, domain.StatusPending).Return(nil)

	invoice, err := svc.UpdateStatus(context.Background(), id, service.UpdateStatusInput{Status: "pending"})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, invoice.Status)
}

func TestInvoiceService_UpdateStatus_UnknownStatus(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo))

	id := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{ID: id, Status: domain.StatusPending}, nil)

	_, err := svc.UpdateStatus(context.Background(), id, service.UpdateStatusInput{Status: "archived"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	invoiceRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateStatus_NotFound(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo))

	id := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), id, service.UpdateStatusInput{Status: "paid"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_Create_CatalogPrefillsPrice(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput(clientID)
	input.Items = []service.InvoiceItemInput{
		{Description: "Domain Registration", Quantity: 2},
	}

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, invoice.Items[0].UnitPrice.Equal(decimal.NewFromInt(15)))
	assert.True(t, invoice.Items[0].Total.Equal(decimal.NewFromInt(30)))
}

func TestInvoiceService_Create_ExplicitPriceBeatsCatalog(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput(clientID)
	input.Items = []service.InvoiceItemInput{
		{Description: "Basic Web Design", Quantity: 1, UnitPrice: decimal.NewFromInt(250)},
	}

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, invoice.Items[0].UnitPrice.Equal(decimal.NewFromInt(250)))
}

func TestInvoiceService_Create_FreeCatalogItemStaysFree(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput(clientID)
	input.Items = []service.InvoiceItemInput{
		{Description: "Domain Registration", Quantity: 1, IsFree: true},
	}

	invoice, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, invoice.Items[0].UnitPrice.IsZero())
	assert.True(t, invoice.Items[0].Total.IsZero())
}

func TestInvoiceService_List_PassesStatusFilter(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo))

	paid := []domain.Invoice{{ID: uuid.New(), Status: domain.StatusPaid}}
	invoiceRepo.On("List", mock.Anything, domain.StatusPaid, 0, 20).Return(paid, 1, nil)

	invoices, total, err := svc.List(context.Background(), domain.StatusPaid, 0, 20)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, invoices, 1)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_List_UnknownStatus(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo))

	_, _, err := svc.List(context.Background(), domain.InvoiceStatus("archived"), 0, 20)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	invoiceRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
