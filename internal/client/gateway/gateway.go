// Package gateway wraps the stokpilot REST endpoints for products,
// categories and brands behind typed calls, issuing authenticated
// fetches through an explicit Session.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type Gateway struct {
	baseURL string
	httpc   *http.Client
	session *Session
}

func New(baseURL string, session *Session) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		session: session,
	}
}

// Login authenticates and stores the returned bearer token in the
// session.
func (g *Gateway) Login(ctx context.Context, email, password string) (domain.User, error) {
	const op = "Gateway.Login"

	body := credentialsPayload{Email: email, Password: password}
	var res authResponse
	err := g.do(ctx, http.MethodPost, "/api/auth/login", body, &res)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	g.session.SetToken(res.Token)
	return res.User.toDomain(), nil
}

func (g *Gateway) Register(
	ctx context.Context, email, name, password string,
) (domain.User, error) {
	const op = "Gateway.Register"

	body := registerPayload{Email: email, Name: name, Password: password}
	var res authResponse
	err := g.do(ctx, http.MethodPost, "/api/auth/register", body, &res)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	g.session.SetToken(res.Token)
	return res.User.toDomain(), nil
}

// Logout drops the session token. In-flight requests are not aborted;
// they fail server-side once the token is rejected.
func (g *Gateway) Logout() {
	g.session.Clear()
}

func (g *Gateway) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "Gateway.Products"

	var ws []productWire
	if err := g.do(ctx, http.MethodGet, "/api/products", nil, &ws); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, len(ws))
	for i, w := range ws {
		ps[i] = w.toDomain()
	}
	return ps, nil
}

func (g *Gateway) CreateProduct(
	ctx context.Context, d domain.ProductDraft,
) (domain.Product, error) {
	const op = "Gateway.CreateProduct"

	var w productWire
	err := g.do(ctx, http.MethodPost, "/api/products", draftPayload(d), &w)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return w.toDomain(), nil
}

func (g *Gateway) UpdateProduct(
	ctx context.Context, id string, d domain.ProductDraft,
) (domain.Product, error) {
	const op = "Gateway.UpdateProduct"

	var w productWire
	err := g.do(ctx, http.MethodPut, "/api/products/"+id, draftPayload(d), &w)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return w.toDomain(), nil
}

func (g *Gateway) DeleteProduct(ctx context.Context, id string) error {
	const op = "Gateway.DeleteProduct"

	if err := g.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (g *Gateway) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "Gateway.Categories"

	var ws []taxonomyWire
	if err := g.do(ctx, http.MethodGet, "/api/categories", nil, &ws); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, len(ws))
	for i, w := range ws {
		cs[i] = domain.Category(w.toDomain())
	}
	return cs, nil
}

func (g *Gateway) CreateCategory(
	ctx context.Context, name string,
) (domain.Category, error) {
	const op = "Gateway.CreateCategory"

	var w taxonomyWire
	err := g.do(ctx, http.MethodPost, "/api/categories", namePayload{name}, &w)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.Category(w.toDomain()), nil
}

func (g *Gateway) DeleteCategory(ctx context.Context, id string) error {
	const op = "Gateway.DeleteCategory"

	if err := g.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (g *Gateway) Brands(ctx context.Context) ([]domain.Brand, error) {
	const op = "Gateway.Brands"

	var ws []taxonomyWire
	if err := g.do(ctx, http.MethodGet, "/api/brands", nil, &ws); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bs := make([]domain.Brand, len(ws))
	for i, w := range ws {
		bs[i] = domain.Brand(w.toDomain())
	}
	return bs, nil
}

func (g *Gateway) CreateBrand(
	ctx context.Context, name string,
) (domain.Brand, error) {
	const op = "Gateway.CreateBrand"

	var w taxonomyWire
	err := g.do(ctx, http.MethodPost, "/api/brands", namePayload{name}, &w)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.Brand(w.toDomain()), nil
}

func (g *Gateway) DeleteBrand(ctx context.Context, id string) error {
	const op = "Gateway.DeleteBrand"

	if err := g.do(ctx, http.MethodDelete, "/api/brands/"+id, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (g *Gateway) do(
	ctx context.Context, method, path string, body, out any,
) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(
		ctx, method, g.baseURL+path, reqBody,
	)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := g.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := g.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := statusErr(res); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func statusErr(res *http.Response) error {
	if res.StatusCode < 300 {
		return nil
	}

	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body.Error)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body.Error)
	default:
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, body.Error)
	}
}
