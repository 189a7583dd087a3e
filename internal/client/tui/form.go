package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

var errBadForm = errors.New("malformed product form")

// draftFromForm parses the add-product fields. Price and stock accept
// the Turkish decimal comma as well as the dot.
func draftFromForm(form []textinput.Model) (domain.ProductDraft, error) {
	if len(form) != 5 {
		return domain.ProductDraft{}, errBadForm
	}

	price, err := parsePrice(form[1].Value())
	if err != nil {
		return domain.ProductDraft{}, errBadForm
	}

	stock := 0
	if v := strings.TrimSpace(form[2].Value()); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil {
			return domain.ProductDraft{}, errBadForm
		}
	}

	d := domain.ProductDraft{
		Title:    strings.TrimSpace(form[0].Value()),
		Price:    price,
		Stock:    stock,
		Category: strings.TrimSpace(form[3].Value()),
		Brand:    strings.TrimSpace(form[4].Value()),
	}
	if d.Title == "" || d.Price < 0 || d.Stock < 0 {
		return domain.ProductDraft{}, errBadForm
	}
	return d, nil
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
