// Package pdf genera el reporte imprimible del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StokPro · Reporte de Inventario │ Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / valor total / ítems en stock bajo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Mínimo | Precio | Valor    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 29, Green: 78, Blue: 216}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF del estado actual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, state *entity.State) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(state))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range productRows(state) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la aplicación (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("StokPro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales derivados del estado.
func summaryRow(state *entity.State) core.Row {
	total := analytics.TotalStockValue(state).StringFixed(2)
	low := analytics.LowStockCount(state)

	return row.New(10).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Productos: %d", len(state.Products)), props.Text{Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New("Valor total: $"+total, props.Text{Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Stock bajo: %d", low), props.Text{
				Size: 9, Top: 2, Color: lowColor(low),
			}),
		),
	)
}

func lowColor(n int) *props.Color {
	if n > 0 {
		return colorCritical
	}
	return colorGray
}

// tableHeaderRow encabezado de la tabla de productos.
func tableHeaderRow() core.Row {
	header := func(label string, width int, al align.Type) core.Col {
		return col.New(width).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("SKU", 2, align.Left),
		header("Producto", 4, align.Left),
		header("Stock", 1, align.Right),
		header("Mínimo", 1, align.Right),
		header("Precio", 2, align.Right),
		header("Valor", 2, align.Right),
	)
}

// productRows una fila por producto, en orden de inserción. Los productos en
// stock bajo se marcan en rojo.
func productRows(state *entity.State) []core.Row {
	rows := make([]core.Row, 0, len(state.Products))
	for _, p := range state.Products {
		textColor := colorGray
		if p.IsLowStock() {
			textColor = colorCritical
		}
		cell := func(value string, width int, al align.Type) core.Col {
			return col.New(width).Add(text.New(value, props.Text{
				Size: 8, Align: al, Color: textColor, Top: 1,
			}))
		}
		rows = append(rows, row.New(6).Add(
			cell(p.SKU, 2, align.Left),
			cell(p.Name, 4, align.Left),
			cell(fmt.Sprintf("%d", p.Stock), 1, align.Right),
			cell(fmt.Sprintf("%d", p.MinStock), 1, align.Right),
			cell(p.Price.StringFixed(2), 2, align.Right),
			cell(p.StockValue().StringFixed(2), 2, align.Right),
		))
	}
	return rows
}
