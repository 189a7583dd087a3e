package tui

import (
	"fmt"
	"strings"

	"github.com/stokpilot/stokpilot/internal/client/catalog"
	"github.com/stokpilot/stokpilot/internal/core/domain"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeLogin:
		return m.renderForm("Giriş Yap", "[enter] giriş  [ctrl+r] kayıt ol  [ctrl+c] çıkış")
	case modeRegister:
		return m.renderForm("Kayıt Ol", "[enter] kaydol  [ctrl+r] giriş  [ctrl+c] çıkış")
	case modeAdd:
		return m.renderForm("Yeni Ürün", "[enter] kaydet  [esc] vazgeç")
	default:
		return m.renderList()
	}
}

func (m Model) renderForm(title, footer string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(" stokpilot ") + "\n")
	b.WriteString(sectionStyle.Render(title) + "\n\n")

	for i := range m.form {
		b.WriteString(m.form[i].View() + "\n")
	}

	if m.formErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.formErr) + "\n")
	}
	b.WriteString(footerStyle.Render(footer))

	return containerStyle.Render(b.String())
}

func (m Model) renderList() string {
	view := m.ctrl.View()

	var b strings.Builder
	b.WriteString(headerStyle.Render(" stokpilot ") + "  ")
	b.WriteString(dimStyle.Render(m.user.Name) + "\n")

	b.WriteString(m.renderStats(view.Stats))
	b.WriteString(m.renderFilters(view))
	b.WriteString(m.renderTable(view))
	b.WriteString(m.renderPager(view))

	if view.ErrMsg != "" {
		b.WriteString("\n" + errorStyle.Render(view.ErrMsg))
	}
	if m.formErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.formErr))
	}

	footer := footerKeyStyle.Render("[/]") + footerStyle.Render(" ara  ") +
		footerKeyStyle.Render("[s]") + footerStyle.Render(" sırala  ") +
		footerKeyStyle.Render("[f]") + footerStyle.Render(" stok  ") +
		footerKeyStyle.Render("[c]") + footerStyle.Render(" kategori  ") +
		footerKeyStyle.Render("[b]") + footerStyle.Render(" marka  ") +
		footerKeyStyle.Render("[a]") + footerStyle.Render(" ekle  ") +
		footerKeyStyle.Render("[x]") + footerStyle.Render(" sil  ") +
		footerKeyStyle.Render("[r]") + footerStyle.Render(" yenile  ") +
		footerKeyStyle.Render("[q]") + footerStyle.Render(" çıkış")
	b.WriteString("\n" + footer)

	return containerStyle.Render(b.String())
}

func (m Model) renderStats(s catalog.Stats) string {
	line := labelStyle.Render("Ürün: ") + valueStyle.Render(fmt.Sprintf("%d", s.TotalProducts)) +
		labelStyle.Render("  Stok: ") + valueStyle.Render(fmt.Sprintf("%d", s.TotalStock)) +
		labelStyle.Render("  Değer: ") + valueStyle.Render(formatPrice(s.TotalValue)) +
		labelStyle.Render("  Ort. Fiyat: ") + valueStyle.Render(formatPrice(s.AveragePrice)) +
		labelStyle.Render("  Son 7 gün: ") + valueStyle.Render(fmt.Sprintf("%d", s.RecentCount))
	return line + "\n"
}

func (m Model) renderFilters(view catalog.View) string {
	var parts []string

	parts = append(parts, dimStyle.Render("Sıralama: ")+sortLabel(view.Sort))
	parts = append(parts, dimStyle.Render("Stok: ")+stockLabel(view.Criteria.Stock))

	if view.Criteria.Category != "" {
		parts = append(parts, dimStyle.Render("Kategori: ")+m.ctrl.CategoryName(view.Criteria.Category))
	}
	if view.Criteria.Brand != "" {
		parts = append(parts, dimStyle.Render("Marka: ")+m.ctrl.BrandName(view.Criteria.Brand))
	}

	line := strings.Join(parts, "  ")
	search := m.search.View()
	return line + "\n" + search + "\n"
}

func (m Model) renderTable(view catalog.View) string {
	var b strings.Builder
	b.WriteString("\n")

	if len(view.Window) == 0 {
		b.WriteString(dimStyle.Render("Gösterilecek ürün yok") + "\n")
		return b.String()
	}

	for i, p := range view.Window {
		line := fmt.Sprintf("%-28s %10s  %s  %-14s %-14s %s",
			truncate(p.Title, 28),
			formatPrice(p.Price),
			stockCell(p.Stock),
			truncate(m.ctrl.CategoryName(p.Category), 14),
			truncate(m.ctrl.BrandName(p.Brand), 14),
			editedCell(p),
		)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderPager(view catalog.View) string {
	nums := catalog.PageNumbers(view.Page, view.TotalPages)

	var parts []string
	for _, n := range nums {
		switch {
		case n == -1:
			parts = append(parts, dimStyle.Render("…"))
		case n == view.Page:
			parts = append(parts, selectedStyle.Render(fmt.Sprintf(" %d ", n)))
		default:
			parts = append(parts, fmt.Sprintf(" %d ", n))
		}
	}

	counts := dimStyle.Render(fmt.Sprintf(
		"%d / %d ürün, sayfa başına %d",
		view.Filtered, view.Total, view.PerPage,
	))
	return strings.Join(parts, "") + "  " + counts + "\n"
}

func stockCell(stock int) string {
	s := fmt.Sprintf("%5d", stock)
	switch catalog.BucketOf(stock) {
	case catalog.StockOut:
		return outOfStockStyle.Render(s)
	case catalog.StockLow:
		return lowStockStyle.Render(s)
	default:
		return inStockStyle.Render(s)
	}
}

func editedCell(p domain.Product) string {
	if p.Edited() {
		return dimStyle.Render("Düzenlendi: " + p.UpdatedAt.Format("02.01.2006"))
	}
	return dimStyle.Render("Oluşturuldu: " + p.CreatedAt.Format("02.01.2006"))
}

func sortLabel(spec catalog.SortSpec) string {
	if spec.Field == catalog.SortNone {
		return "Varsayılan"
	}

	var name string
	switch spec.Field {
	case catalog.SortPrice:
		name = "Fiyat"
	case catalog.SortStock:
		name = "Stok"
	case catalog.SortTitle:
		name = "İsim"
	case catalog.SortDate:
		name = "Tarih"
	}

	if spec.Direction == catalog.Desc {
		return name + " ↓"
	}
	return name + " ↑"
}

func stockLabel(b catalog.StockBucket) string {
	switch b {
	case catalog.StockIn:
		return "Stokta"
	case catalog.StockLow:
		return "Az Stok"
	case catalog.StockOut:
		return "Tükendi"
	default:
		return "Tümü"
	}
}

func formatPrice(v float64) string {
	return fmt.Sprintf("₺%.2f", v)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
