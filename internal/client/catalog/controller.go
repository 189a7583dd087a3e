package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

// Gateway is the REST boundary the controller reads and writes through.
type Gateway interface {
	Products(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, d domain.ProductDraft) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, d domain.ProductDraft) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Brands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, name string) (domain.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

var ErrInvalidDraft = errors.New("invalid product draft")

// View is one derived snapshot of the controller state: the visible
// window plus everything the UI needs to render around it.
type View struct {
	Window     []domain.Product
	Filtered   int
	Total      int
	Page       int
	TotalPages int
	PerPage    int
	Criteria   Criteria
	Sort       SortSpec
	Stats      Stats
	ErrMsg     string
}

// Controller owns the product, category and brand collections together
// with the current filter, sort and pagination state, and re-derives
// the filtered, sorted and windowed views on every change.
//
// All gateway calls are synchronous; callers that want fire-and-forget
// run them in their own goroutine. A response applying after Close is
// a no-op, so a torn-down view never mutates.
type Controller struct {
	mu sync.Mutex
	gw Gateway

	products   []domain.Product
	categories []domain.Category
	brands     []domain.Brand

	criteria Criteria
	sortSpec SortSpec
	page     int
	perPage  int

	errMsg string
	closed bool

	search *Debouncer
	now    func() time.Time
}

func NewController(gw Gateway) *Controller {
	c := &Controller{
		gw:      gw,
		page:    1,
		perPage: DefaultPerPage,
		now:     time.Now,
	}
	c.search = NewDebouncer(SearchDelay, c.applyQuery)
	return c
}

// Load fetches all three collections and replaces the local state.
// A failing fetch leaves its collection unchanged.
func (c *Controller) Load(ctx context.Context) error {
	const op = "Controller.Load"
	log := slog.With("op", op)

	ps, psErr := c.gw.Products(ctx)
	cats, catsErr := c.gw.Categories(ctx)
	brs, brsErr := c.gw.Brands(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}

	if psErr == nil {
		c.products = ps
	}
	if catsErr == nil {
		c.categories = cats
	}
	if brsErr == nil {
		c.brands = brs
	}

	err := errors.Join(psErr, catsErr, brsErr)
	if err != nil {
		log.Error("failed to load collections", "err", err)
		c.errMsg = "Veriler yüklenirken bir hata oluştu"
	}
	return err
}

// Close tears the controller down: pending debounced emissions are
// cancelled and late gateway responses stop applying.
func (c *Controller) Close() {
	c.search.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// View derives the current window, page count and statistics. The page
// is clamped to the last valid one, so a shrunken result set never
// leaves the view on an empty page.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := Filter(c.products, c.criteria)
	sorted := Sort(filtered, c.sortSpec)

	_, totalPages := Paginate(sorted, 1, c.perPage)
	if c.page > totalPages {
		c.page = totalPages
	}
	window, _ := Paginate(sorted, c.page, c.perPage)

	return View{
		Window:     window,
		Filtered:   len(filtered),
		Total:      len(c.products),
		Page:       c.page,
		TotalPages: totalPages,
		PerPage:    c.perPage,
		Criteria:   c.criteria,
		Sort:       c.sortSpec,
		Stats:      Summarize(c.products, c.categories, c.brands, c.now()),
		ErrMsg:     c.errMsg,
	}
}

// Every criteria change resets pagination to the first page. The
// original UI only reset on some axes; one uniform policy replaces
// that asymmetry.

func (c *Controller) SetCategory(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Category = id
	c.page = 1
}

func (c *Controller) SetBrand(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Brand = id
	c.page = 1
}

func (c *Controller) SetStockBucket(b StockBucket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Stock = b
	c.page = 1
}

func (c *Controller) SetPriceRange(min, max *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.PriceMin = min
	c.criteria.PriceMax = max
	c.page = 1
}

// SetSearch feeds the debouncer; the query applies once the input has
// stayed quiet for SearchDelay.
func (c *Controller) SetSearch(text string) {
	c.search.Input(text)
}

func (c *Controller) applyQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.criteria.Query = text
	c.page = 1
}

// SetSort deliberately keeps the current page.
func (c *Controller) SetSort(field SortField, dir SortDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortSpec = SortSpec{Field: field, Direction: dir}
}

func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 {
		page = 1
	}
	c.page = page
}

func (c *Controller) SetPerPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(PerPageMenu, n) {
		return
	}
	c.perPage = n
	c.page = 1
}

// AddProduct validates the draft, creates it through the gateway and
// prepends the returned record, matching the newest-first list order.
func (c *Controller) AddProduct(ctx context.Context, d domain.ProductDraft) error {
	const op = "Controller.AddProduct"

	if err := validateDraft(d); err != nil {
		return err
	}

	p, err := c.gw.CreateProduct(ctx, d)
	if err != nil {
		c.fail(op, "Ürün eklenirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.products = append([]domain.Product{p}, c.products...)
	return nil
}

func (c *Controller) EditProduct(
	ctx context.Context, id string, d domain.ProductDraft,
) error {
	const op = "Controller.EditProduct"

	if err := validateDraft(d); err != nil {
		return err
	}

	p, err := c.gw.UpdateProduct(ctx, id, d)
	if err != nil {
		c.fail(op, "Ürün güncellenirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i] = p
			break
		}
	}
	return nil
}

func (c *Controller) DeleteProduct(ctx context.Context, id string) error {
	const op = "Controller.DeleteProduct"

	if err := c.gw.DeleteProduct(ctx, id); err != nil {
		c.fail(op, "Ürün silinirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.products = slices.DeleteFunc(c.products, func(p domain.Product) bool {
		return p.ID == id
	})
	return nil
}

func (c *Controller) AddCategory(ctx context.Context, name string) error {
	const op = "Controller.AddCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidDraft
	}

	cat, err := c.gw.CreateCategory(ctx, name)
	if err != nil {
		c.fail(op, "Kategori eklenirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.categories = append(c.categories, cat)
	return nil
}

// DeleteCategory removes the entry without touching products that
// still reference it; their display falls back to the not-found label.
func (c *Controller) DeleteCategory(ctx context.Context, id string) error {
	const op = "Controller.DeleteCategory"

	if err := c.gw.DeleteCategory(ctx, id); err != nil {
		c.fail(op, "Kategori silinirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.categories = slices.DeleteFunc(c.categories, func(v domain.Category) bool {
		return v.ID == id
	})
	return nil
}

func (c *Controller) AddBrand(ctx context.Context, name string) error {
	const op = "Controller.AddBrand"

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidDraft
	}

	b, err := c.gw.CreateBrand(ctx, name)
	if err != nil {
		c.fail(op, "Marka eklenirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.brands = append(c.brands, b)
	return nil
}

func (c *Controller) DeleteBrand(ctx context.Context, id string) error {
	const op = "Controller.DeleteBrand"

	if err := c.gw.DeleteBrand(ctx, id); err != nil {
		c.fail(op, "Marka silinirken bir hata oluştu", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.brands = slices.DeleteFunc(c.brands, func(v domain.Brand) bool {
		return v.ID == id
	})
	return nil
}

// CategoryName resolves a product's category reference for display.
// Dangling references fall back to the not-found label.
func (c *Controller) CategoryName(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.categories {
		if v.ID == id {
			return v.Name
		}
	}
	return "Kategori Yok"
}

func (c *Controller) BrandName(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.brands {
		if v.ID == id {
			return v.Name
		}
	}
	return "Marka Yok"
}

func (c *Controller) Categories() []domain.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.categories)
}

func (c *Controller) Brands() []domain.Brand {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.brands)
}

// ClearError drops the user-visible error string.
func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = ""
}

// fail records a gateway failure: logged, surfaced as a user-visible
// string, local collections left untouched.
func (c *Controller) fail(op, msg string, err error) {
	slog.Error("gateway call failed", "op", op, "err", err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.errMsg = msg
}

func validateDraft(d domain.ProductDraft) error {
	if strings.TrimSpace(d.Title) == "" || d.Price < 0 || d.Stock < 0 {
		return ErrInvalidDraft
	}
	return nil
}
