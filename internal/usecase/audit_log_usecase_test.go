package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListAuditLogs_InvalidLimit(t *testing.T) {
	uc := usecase.NewAuditLogUsecase(new(AuditRepoMock))

	_, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{Limit: 201})
	assertHTTPError(t, err, 400, "invalid limit")
}

func TestListAuditLogs_InvalidAction(t *testing.T) {
	uc := usecase.NewAuditLogUsecase(new(AuditRepoMock))

	bogus := model.AuditAction("BOGUS")
	_, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{Action: &bogus})
	assertHTTPError(t, err, 400, "invalid action")
}

func TestListAuditLogs_Success(t *testing.T) {
	audits := new(AuditRepoMock)
	uc := usecase.NewAuditLogUsecase(audits)

	action := model.AuditActionSegmentDropped
	in := usecase.ListAuditLogsInput{Action: &action, Limit: 10}

	audits.On("List", mock.Anything, repo.AuditLogFilter{Action: &action, Limit: 10}).
		Return([]model.AuditLog{
			{ID: 1, EntryID: "e1", CartID: 9, Action: action, Detail: "bogus"},
		}, nil)

	out, err := uc.ListAuditLogs(context.Background(), in)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "bogus", out.Items[0].Detail)
}

func TestGetProductDetail_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByID", mock.Anything, int64(5)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 5)
	assertHTTPError(t, err, 404, "Product not found")
}

func TestGetProductDetail_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByID", mock.Anything, int64(5)).
		Return(model.Product{ProductID: 5, Name: "Zinc", Price: 10, SellingPrice: 8, ImageURL: "z.png"}, nil)

	p, err := uc.GetProductDetail(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Zinc", p.Name)
	assert.Equal(t, 8.0, p.SellingPrice)
}
