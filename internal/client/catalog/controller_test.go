package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stokpilot/stokpilot/internal/client/catalog"
	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Products(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockGateway) CreateProduct(
	ctx context.Context, d domain.ProductDraft,
) (domain.Product, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockGateway) UpdateProduct(
	ctx context.Context, id string, d domain.ProductDraft,
) (domain.Product, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockGateway) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGateway) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *MockGateway) CreateCategory(
	ctx context.Context, name string,
) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockGateway) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGateway) Brands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]domain.Brand)
	return bs, args.Error(1)
}

func (m *MockGateway) CreateBrand(
	ctx context.Context, name string,
) (domain.Brand, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Brand), args.Error(1)
}

func (m *MockGateway) DeleteBrand(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func loadedController(
	t *testing.T, ps []domain.Product,
) (*catalog.Controller, *MockGateway) {
	t.Helper()

	gw := new(MockGateway)
	gw.On("Products", mock.Anything).Return(ps, nil).Once()
	gw.On("Categories", mock.Anything).Return([]domain.Category(nil), nil).Once()
	gw.On("Brands", mock.Anything).Return([]domain.Brand(nil), nil).Once()

	c := catalog.NewController(gw)
	require.NoError(t, c.Load(t.Context()))
	return c, gw
}

func TestControllerLoad(t *testing.T) {
	t.Run("PopulatesCollections", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Products", mock.Anything).Return(testProducts(), nil)
		gw.On("Categories", mock.Anything).
			Return([]domain.Category{{ID: "C1", Name: "Atıştırmalık"}}, nil)
		gw.On("Brands", mock.Anything).
			Return([]domain.Brand{{ID: "B1", Name: "Eti"}}, nil)

		c := catalog.NewController(gw)
		defer c.Close()
		require.NoError(t, c.Load(t.Context()))

		v := c.View()
		assert.Equal(t, 4, v.Total)
		assert.Equal(t, 1, v.Stats.TotalCategories)
		assert.Equal(t, 1, v.Stats.TotalBrands)
		assert.Empty(t, v.ErrMsg)
	})

	t.Run("PartialFailureKeepsCollectionAndSetsError", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Products", mock.Anything).
			Return([]domain.Product(nil), errors.New("boom"))
		gw.On("Categories", mock.Anything).
			Return([]domain.Category{{ID: "C1", Name: "Atıştırmalık"}}, nil)
		gw.On("Brands", mock.Anything).Return([]domain.Brand(nil), nil)

		c := catalog.NewController(gw)
		defer c.Close()
		require.Error(t, c.Load(t.Context()))

		v := c.View()
		assert.Zero(t, v.Total)
		assert.Equal(t, 1, v.Stats.TotalCategories)
		assert.NotEmpty(t, v.ErrMsg)
	})
}

func TestControllerPagination(t *testing.T) {
	t.Run("CategoryChangeOnPageThreeResetsToPageOne", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPage(3)
		require.Equal(t, 3, c.View().Page)

		c.SetCategory("C1")
		assert.Equal(t, 1, c.View().Page)
	})

	t.Run("SortKeepsPage", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPage(2)
		c.SetSort(catalog.SortPrice, catalog.Desc)
		assert.Equal(t, 2, c.View().Page)
	})

	t.Run("PriceRangeChangeResetsPage", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPage(3)
		c.SetPriceRange(ptr(1), nil)
		assert.Equal(t, 1, c.View().Page)
	})

	t.Run("PerPageChangeResetsPage", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPage(2)
		c.SetPerPage(6)
		v := c.View()
		assert.Equal(t, 1, v.Page)
		assert.Equal(t, 6, v.PerPage)
	})

	t.Run("PerPageOutsideMenuIgnored", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPerPage(7)
		assert.Equal(t, catalog.DefaultPerPage, c.View().PerPage)
	})

	t.Run("PageBeyondLastClampedToLast", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPage(9)
		v := c.View()
		assert.Equal(t, 3, v.TotalPages)
		assert.Equal(t, 3, v.Page)
		assert.Len(t, v.Window, 6)
	})

	t.Run("PageClampedAfterShrink", func(t *testing.T) {
		c, _ := loadedController(t, nProducts(30))
		defer c.Close()

		c.SetPage(3)
		c.SetSearch("p1")
		// the debounced query lands after the delay
		assert.Eventually(t, func() bool {
			v := c.View()
			return v.Criteria.Query == "p1" && v.Page == 1
		}, time.Second, 10*time.Millisecond)
	})
}

func TestControllerScenario(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", Title: "Gofret", Price: 10, Stock: 5, Category: "C1", Brand: "B1"},
		{ID: "p2", Title: "Kek", Price: 20, Stock: 0, Category: "C2", Brand: "B1"},
	}

	t.Run("BrandFilterThenSortDesc", func(t *testing.T) {
		c, _ := loadedController(t, products)
		defer c.Close()

		c.SetBrand("B1")
		v := c.View()
		require.Equal(t, 2, v.Filtered)

		c.SetSort(catalog.SortPrice, catalog.Desc)
		v = c.View()
		require.Len(t, v.Window, 2)
		assert.Equal(t, "Kek", v.Window[0].Title)
		assert.Equal(t, "Gofret", v.Window[1].Title)
	})

	t.Run("OutOfStockBeforeSort", func(t *testing.T) {
		c, _ := loadedController(t, products)
		defer c.Close()

		c.SetBrand("B1")
		c.SetStockBucket(catalog.StockOut)
		c.SetSort(catalog.SortPrice, catalog.Desc)

		v := c.View()
		require.Len(t, v.Window, 1)
		assert.Equal(t, "Kek", v.Window[0].Title)
	})
}

func TestControllerMutations(t *testing.T) {
	t.Run("AddProductPrepends", func(t *testing.T) {
		c, gw := loadedController(t, testProducts())
		defer c.Close()

		draft := domain.ProductDraft{Title: "Lokum", Price: 15}
		created := domain.Product{ID: "p9", Title: "Lokum", Price: 15}
		gw.On("CreateProduct", mock.Anything, draft).Return(created, nil)

		require.NoError(t, c.AddProduct(t.Context(), draft))

		v := c.View()
		assert.Equal(t, 5, v.Total)
		assert.Equal(t, "Lokum", v.Window[0].Title)
	})

	t.Run("AddProductRejectsBlankTitle", func(t *testing.T) {
		c, gw := loadedController(t, nil)
		defer c.Close()

		err := c.AddProduct(t.Context(), domain.ProductDraft{Title: "   "})
		require.ErrorIs(t, err, catalog.ErrInvalidDraft)
		gw.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("EditProductReplacesInPlace", func(t *testing.T) {
		c, gw := loadedController(t, testProducts())
		defer c.Close()

		draft := domain.ProductDraft{Title: "Gofret XL", Price: 12}
		updated := domain.Product{ID: "p1", Title: "Gofret XL", Price: 12}
		gw.On("UpdateProduct", mock.Anything, "p1", draft).Return(updated, nil)

		require.NoError(t, c.EditProduct(t.Context(), "p1", draft))

		v := c.View()
		assert.Equal(t, 4, v.Total)
		assert.Equal(t, "Gofret XL", v.Window[0].Title)
	})

	t.Run("DeleteFailureKeepsList", func(t *testing.T) {
		c, gw := loadedController(t, testProducts())
		defer c.Close()

		gw.On("DeleteProduct", mock.Anything, "p1").
			Return(errors.New("network down"))

		require.Error(t, c.DeleteProduct(t.Context(), "p1"))

		v := c.View()
		assert.Equal(t, 4, v.Total)
		assert.NotEmpty(t, v.ErrMsg)

		c.ClearError()
		assert.Empty(t, c.View().ErrMsg)
	})

	t.Run("DeleteRemovesLocally", func(t *testing.T) {
		c, gw := loadedController(t, testProducts())
		defer c.Close()

		gw.On("DeleteProduct", mock.Anything, "p2").Return(nil)

		require.NoError(t, c.DeleteProduct(t.Context(), "p2"))
		assert.Equal(t, 3, c.View().Total)
	})

	t.Run("LateResponseAfterCloseIsNoOp", func(t *testing.T) {
		c, gw := loadedController(t, testProducts())
		gw.On("DeleteProduct", mock.Anything, "p1").Return(nil)

		c.Close()
		require.NoError(t, c.DeleteProduct(t.Context(), "p1"))
		assert.Equal(t, 4, c.View().Total)
	})
}

func TestControllerTaxonomy(t *testing.T) {
	t.Run("AddCategoryTrimsName", func(t *testing.T) {
		c, gw := loadedController(t, nil)
		defer c.Close()

		created := domain.Category{ID: "C7", Name: "Atıştırmalık"}
		gw.On("CreateCategory", mock.Anything, "Atıştırmalık").Return(created, nil)

		require.NoError(t, c.AddCategory(t.Context(), "  Atıştırmalık  "))
		assert.Equal(t, "Atıştırmalık", c.CategoryName("C7"))
	})

	t.Run("DeleteLeavesDanglingReference", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Products", mock.Anything).Return([]domain.Product{
			{ID: "p1", Title: "Gofret", Category: "C1"},
		}, nil)
		gw.On("Categories", mock.Anything).
			Return([]domain.Category{{ID: "C1", Name: "Atıştırmalık"}}, nil)
		gw.On("Brands", mock.Anything).Return([]domain.Brand(nil), nil)
		gw.On("DeleteCategory", mock.Anything, "C1").Return(nil)

		c := catalog.NewController(gw)
		defer c.Close()
		require.NoError(t, c.Load(t.Context()))

		require.NoError(t, c.DeleteCategory(t.Context(), "C1"))

		// the product keeps the stale reference, display falls back
		v := c.View()
		require.Len(t, v.Window, 1)
		assert.Equal(t, "C1", v.Window[0].Category)
		assert.Equal(t, "Kategori Yok", c.CategoryName("C1"))
	})

	t.Run("AddBrandRejectsBlank", func(t *testing.T) {
		c, gw := loadedController(t, nil)
		defer c.Close()

		err := c.AddBrand(t.Context(), "   ")
		require.ErrorIs(t, err, catalog.ErrInvalidDraft)
		gw.AssertNotCalled(t, "CreateBrand", mock.Anything, mock.Anything)
	})
}
