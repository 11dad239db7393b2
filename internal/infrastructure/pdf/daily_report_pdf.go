// Package pdf genera el PDF de exportación del reporte diario de una sucursal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre app + Sucursal  │  Fecha del reporte         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: Ventas | Ingresos | Gastos | Utilidad neta     │
//	│  Producto más vendido                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS POR ÍTEM (opcional)                                  │
//	│  GASTOS POR CATEGORÍA (opcional)                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: estado de exportación + fecha de generación         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 150, Green: 40, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 200, Green: 0, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// DailyReportInput datos ya calculados del día. Sales y Expenses son opcionales.
type DailyReportInput struct {
	Report     *dto.DailyReportResponse
	BranchName string
	Sales      *dto.SalesSummary
	Expenses   *dto.ExpenseSummary
}

// DailyReportPDFGenerator genera el PDF del reporte diario con Maroto v2.
type DailyReportPDFGenerator struct {
	appName string
	now     func() time.Time
}

// NewDailyReportPDFGenerator construye el generador; appName aparece en el encabezado.
func NewDailyReportPDFGenerator(appName string) *DailyReportPDFGenerator {
	return &DailyReportPDFGenerator{appName: appName, now: time.Now}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *DailyReportPDFGenerator) Generate(_ context.Context, in DailyReportInput) ([]byte, error) {
	if in.Report == nil {
		return nil, fmt.Errorf("pdf: reporte requerido")
	}
	r := in.Report

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte diario "+r.ReportDate.Format("2006-01-02"), true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, branchLabel(in.BranchName, r.BranchID), r.ReportDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(indicatorsRow(r))
	m.AddRows(topSellingRow(r.TopSellingItem))

	if in.Sales != nil && len(in.Sales.SalesByItem) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("VENTAS POR ÍTEM"))
		m.AddRows(salesHeaderRow())
		m.AddRows(salesRows(in.Sales.SalesByItem)...)
	}

	if in.Expenses != nil && len(in.Expenses.CategoryBreakdown) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("GASTOS POR CATEGORÍA"))
		m.AddRows(expensesHeaderRow())
		m.AddRows(expenseRows(in.Expenses.CategoryBreakdown)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r.ExportStatus, g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// Filename nombre sugerido para descargar el reporte.
func Filename(r *dto.DailyReportResponse) string {
	return fmt.Sprintf("reporte-diario-%d-%s.pdf", r.BranchID, r.ReportDate.Format("2006-01-02"))
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName, branch string, date time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(branch, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DIARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// indicatorsRow: cuatro indicadores en columnas iguales.
func indicatorsRow(r *dto.DailyReportResponse) core.Row {
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 7}),
		)
	}
	profitColor := colorPrimary
	if r.NetProfit.IsNegative() {
		profitColor = colorLoss
	}
	return row.New(18).Add(
		kpi("Ventas", strconv.Itoa(r.TotalSales), colorPrimary),
		kpi("Ingresos", money(r.TotalRevenue), colorPrimary),
		kpi("Gastos", money(r.TotalExpenses), colorPrimary),
		kpi("Utilidad neta", money(r.NetProfit), profitColor),
	)
}

func topSellingRow(item *string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Producto más vendido: "+nonEmpty(item, "—"), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		}),
	))
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

func salesHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Ítem", 6, align.Left),
		headerCell("Precio", 2, align.Right),
		headerCell("Cant.", 1, align.Center),
		headerCell("Ingresos", 3, align.Right),
	)
}

func salesRows(items []dto.SaleByItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(it.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money(it.ItemPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.QuantitySold), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(money(it.Revenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func expensesHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Categoría", 7, align.Left),
		headerCell("Registros", 2, align.Center),
		headerCell("Total", 3, align.Right),
	)
}

func expenseRows(breakdown []dto.ExpenseCategoryBreakdown) []core.Row {
	result := make([]core.Row, 0, len(breakdown))
	for _, b := range breakdown {
		result = append(result, row.New(6).Add(
			col.New(7).Add(text.New(b.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(b.ItemCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(money(b.TotalAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow(status string, generatedAt time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Estado de exportación: %s   |   Generado: %s",
			status, generatedAt.Format("02/01/2006 15:04")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func branchLabel(name string, id int64) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Sucursal #%d", id)
}

func nonEmpty(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

// money formatea pesos sin decimales con puntos de miles: -1250000 -> "-$1.250.000".
func money(d decimal.Decimal) string {
	s := d.Round(0).Abs().StringFixed(0)
	sign := ""
	if d.Round(0).IsNegative() {
		sign = "-"
	}
	return sign + "$" + formatThousands(s)
}

// formatThousands inserta puntos de miles en un string numérico sin decimales ni signo.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	return b.String()
}
