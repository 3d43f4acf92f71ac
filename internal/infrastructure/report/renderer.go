package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/jimlawless/whereami"
)

const dateLayout = "2006-01-02"

// Renderer собирает дневной отчет в CSV или PDF.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render возвращает готовый документ в запрошенном формате.
// Неизвестный формат — e.ErrUnsupportedFormat.
func (r *Renderer) Render(report *usecase.DailyReportRes, format string) (*usecase.RenderedReport, error) {
	switch format {
	case "csv":
		return r.renderCSV(report)
	case "pdf":
		return r.renderPDF(report)
	default:
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrUnsupportedFormat)
	}
}

// renderCSV пишет по строке на позицию продажи плюс итоговую строку.
func (r *Renderer) renderCSV(report *usecase.DailyReportRes) (*usecase.RenderedReport, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"venta_id", "fecha", "producto", "cantidad", "precio", "subtotal"}
	if err := w.Write(header); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for _, sale := range report.Sales {
		fecha := sale.Fecha.Format("2006-01-02 15:04:05")
		for _, line := range sale.Lines {
			record := []string{
				strconv.FormatInt(sale.ID, 10),
				fecha,
				line.ProductName,
				strconv.FormatInt(line.Quantity, 10),
				line.UnitPrice.String(),
				line.Subtotal.String(),
			}
			if err := w.Write(record); err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}
		}
	}

	total := []string{"total", "", "", strconv.FormatInt(report.UnitsSold, 10), "", report.Revenue.String()}
	if err := w.Write(total); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	day := report.Date.Format(dateLayout)
	return &usecase.RenderedReport{
		Bytes:       buf.Bytes(),
		ContentType: "text/csv; charset=utf-8",
		Filename:    fmt.Sprintf("reporte-%s.csv", day),
	}, nil
}

func (r *Renderer) renderPDF(report *usecase.DailyReportRes) (*usecase.RenderedReport, error) {
	day := report.Date.Format(dateLayout)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Reporte de ventas %s", day), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Reporte de ventas - %s", day), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Ventas: %d", report.SaleCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Unidades vendidas: %d", report.UnitsSold), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Ingresos: %s", report.Revenue.String()), "", 1, "L", false, 0, "")
	if report.TopProduct != nil {
		pdf.CellFormat(0, 7, fmt.Sprintf("Mas vendido: %s (%d)", report.TopProduct.Name, report.TopProduct.Units), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{20, 35, 70, 20, 22, 23}
	headers := []string{"Venta", "Hora", "Producto", "Cant.", "Precio", "Subtotal"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, sale := range report.Sales {
		hora := sale.Fecha.Format("15:04:05")
		for _, line := range sale.Lines {
			cells := []string{
				strconv.FormatInt(sale.ID, 10),
				hora,
				line.ProductName,
				strconv.FormatInt(line.Quantity, 10),
				line.UnitPrice.String(),
				line.Subtotal.String(),
			}
			for i, cell := range cells {
				align := "L"
				if i >= 3 {
					align = "R"
				}
				pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &usecase.RenderedReport{
		Bytes:       buf.Bytes(),
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("reporte-%s.pdf", day),
	}, nil
}
