// Package tui renders the inventory over a terminal UI: a login form,
// the filtered and paginated product list, and the statistics panel.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stokpilot/stokpilot/internal/client/catalog"
	"github.com/stokpilot/stokpilot/internal/client/gateway"
	"github.com/stokpilot/stokpilot/internal/core/domain"
)

const requestTimeout = 10 * time.Second

type mode int

const (
	modeLogin mode = iota
	modeRegister
	modeList
	modeAdd
)

// sortMenu is the cycle the "s" key walks through.
var sortMenu = []catalog.SortSpec{
	{},
	{Field: catalog.SortPrice, Direction: catalog.Asc},
	{Field: catalog.SortPrice, Direction: catalog.Desc},
	{Field: catalog.SortStock, Direction: catalog.Asc},
	{Field: catalog.SortStock, Direction: catalog.Desc},
	{Field: catalog.SortTitle, Direction: catalog.Asc},
	{Field: catalog.SortTitle, Direction: catalog.Desc},
	{Field: catalog.SortDate, Direction: catalog.Desc},
	{Field: catalog.SortDate, Direction: catalog.Asc},
}

var stockMenu = []catalog.StockBucket{
	catalog.StockAll,
	catalog.StockIn,
	catalog.StockLow,
	catalog.StockOut,
}

type (
	authMsg struct {
		user domain.User
		err  error
	}

	loadMsg struct{ err error }

	mutateMsg struct{ err error }

	tickMsg time.Time
)

type Model struct {
	gw   *gateway.Gateway
	ctrl *catalog.Controller

	mode   mode
	form   []textinput.Model
	focus  int
	search textinput.Model

	cursor   int
	catIdx   int
	brandIdx int
	stockIdx int
	sortIdx  int

	user     domain.User
	formErr  string
	quitting bool
}

func NewModel(gw *gateway.Gateway, ctrl *catalog.Controller) Model {
	m := Model{gw: gw, ctrl: ctrl}
	m.form = loginForm()

	m.search = textinput.New()
	m.search.Placeholder = "Ürün ara..."
	m.search.CharLimit = 64
	m.search.Width = 32

	return m
}

func loginForm() []textinput.Model {
	email := textinput.New()
	email.Placeholder = "E-posta"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Şifre"
	password.EchoMode = textinput.EchoPassword

	return []textinput.Model{email, password}
}

func registerForm() []textinput.Model {
	form := loginForm()

	name := textinput.New()
	name.Placeholder = "Ad Soyad"

	return append(form[:1:1], name, form[1])
}

func productForm() []textinput.Model {
	fields := []string{"Ürün adı", "Fiyat", "Stok", "Kategori ID", "Marka ID"}
	form := make([]textinput.Model, len(fields))
	for i, placeholder := range fields {
		ti := textinput.New()
		ti.Placeholder = placeholder
		form[i] = ti
	}
	form[0].Focus()
	return form
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// tick re-renders once a second so debounced search results show up
// without further input.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case authMsg:
		if msg.err != nil {
			m.formErr = "Giriş başarısız, bilgilerinizi kontrol edin"
			return m, nil
		}
		m.user = msg.user
		m.mode = modeList
		m.formErr = ""
		return m, m.load()

	case loadMsg, mutateMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.mode {
		case modeLogin, modeRegister:
			return m.updateAuth(msg)
		case modeAdd:
			return m.updateAdd(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.ctrl.Close()
	return m, tea.Quit
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.focusNext(), nil
	case "shift+tab", "up":
		return m.focusPrev(), nil
	case "ctrl+r":
		if m.mode == modeLogin {
			m.mode = modeRegister
			m.form = registerForm()
		} else {
			m.mode = modeLogin
			m.form = loginForm()
		}
		m.focus = 0
		m.formErr = ""
		return m, nil
	case "enter":
		if m.focus < len(m.form)-1 {
			return m.focusNext(), nil
		}
		return m, m.submitAuth()
	}

	return m.updateForm(msg)
}

func (m Model) submitAuth() tea.Cmd {
	gw := m.gw
	if m.mode == modeRegister {
		email, name, password := m.form[0].Value(), m.form[1].Value(), m.form[2].Value()
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			u, err := gw.Register(ctx, email, name, password)
			return authMsg{u, err}
		}
	}

	email, password := m.form[0].Value(), m.form[1].Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := gw.Login(ctx, email, password)
		return authMsg{u, err}
	}
}

func (m Model) load() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return loadMsg{ctrl.Load(ctx)}
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.ctrl.SetSearch(m.search.Value())
		return m, cmd
	}

	view := m.ctrl.View()

	switch msg.String() {
	case "q":
		return m.quit()
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.load()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(view.Window)-1 {
			m.cursor++
		}
	case "left", "h":
		m.cursor = 0
		m.ctrl.SetPage(view.Page - 1)
	case "right", "l":
		m.cursor = 0
		if view.Page < view.TotalPages {
			m.ctrl.SetPage(view.Page + 1)
		}
	case "p":
		m.cursor = 0
		m.ctrl.SetPerPage(nextPerPage(view.PerPage))
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortMenu)
		spec := sortMenu[m.sortIdx]
		m.ctrl.SetSort(spec.Field, spec.Direction)
	case "f":
		m.cursor = 0
		m.stockIdx = (m.stockIdx + 1) % len(stockMenu)
		m.ctrl.SetStockBucket(stockMenu[m.stockIdx])
	case "c":
		m.cursor = 0
		m.catIdx = (m.catIdx + 1) % (len(m.ctrl.Categories()) + 1)
		m.ctrl.SetCategory(taxonomyID(categoryIDs(m.ctrl), m.catIdx))
	case "b":
		m.cursor = 0
		m.brandIdx = (m.brandIdx + 1) % (len(m.ctrl.Brands()) + 1)
		m.ctrl.SetBrand(taxonomyID(brandIDs(m.ctrl), m.brandIdx))
	case "a":
		m.mode = modeAdd
		m.form = productForm()
		m.focus = 0
		m.formErr = ""
	case "x":
		if m.cursor < len(view.Window) {
			return m, m.deleteProduct(view.Window[m.cursor].ID)
		}
	case "esc":
		m.search.Reset()
		m.ctrl.SetSearch("")
		m.ctrl.ClearError()
	}

	return m, nil
}

func nextPerPage(current int) int {
	for i, n := range catalog.PerPageMenu {
		if n == current {
			return catalog.PerPageMenu[(i+1)%len(catalog.PerPageMenu)]
		}
	}
	return catalog.DefaultPerPage
}

// taxonomyID maps a cycle index to a filter value, index 0 meaning no
// filter at all.
func taxonomyID(ids []string, idx int) string {
	if idx == 0 || idx > len(ids) {
		return ""
	}
	return ids[idx-1]
}

func categoryIDs(ctrl *catalog.Controller) []string {
	cats := ctrl.Categories()
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

func brandIDs(ctrl *catalog.Controller) []string {
	brs := ctrl.Brands()
	ids := make([]string, len(brs))
	for i, b := range brs {
		ids[i] = b.ID
	}
	return ids
}

func (m Model) deleteProduct(id string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutateMsg{ctrl.DeleteProduct(ctx, id)}
	}
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.formErr = ""
		return m, nil
	case "tab", "down":
		return m.focusNext(), nil
	case "shift+tab", "up":
		return m.focusPrev(), nil
	case "enter":
		if m.focus < len(m.form)-1 {
			return m.focusNext(), nil
		}
		draft, err := draftFromForm(m.form)
		if err != nil {
			m.formErr = "Geçersiz ürün bilgisi"
			return m, nil
		}
		m.mode = modeList
		m.formErr = ""
		return m, m.addProduct(draft)
	}

	return m.updateForm(msg)
}

func (m Model) addProduct(d domain.ProductDraft) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutateMsg{ctrl.AddProduct(ctx, d)}
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.form))
	for i := range m.form {
		m.form[i], cmds[i] = m.form[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) focusNext() Model {
	m.form[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.form)
	m.form[m.focus].Focus()
	return m
}

func (m Model) focusPrev() Model {
	m.form[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.form)) % len(m.form)
	m.form[m.focus].Focus()
	return m
}
