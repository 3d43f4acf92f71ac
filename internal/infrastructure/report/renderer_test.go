package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happi-pos/backend/internal/domain"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/e"
)

func sampleReport() *usecase.DailyReportRes {
	productID := int64(1)
	return &usecase.DailyReportRes{
		Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Sales: []usecase.SaleDetail{
			{
				ID:    1,
				Total: domain.Money(10550),
				Fecha: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
				Lines: []usecase.SaleLineInfo{
					{ProductID: &productID, ProductName: "Vainilla", Quantity: 2, UnitPrice: domain.Money(4000), Subtotal: domain.Money(8000)},
					{ProductID: nil, ProductName: "Fresa", Quantity: 1, UnitPrice: domain.Money(2550), Subtotal: domain.Money(2550)},
				},
			},
		},
		SaleCount: 1,
		Revenue:   domain.Money(10550),
		UnitsSold: 3,
		TopProduct: &usecase.TopProduct{
			Name:  "Vainilla",
			Units: 2,
		},
	}
}

func TestRenderCSV(t *testing.T) {
	rendered, err := NewRenderer().Render(sampleReport(), "csv")
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", rendered.ContentType)
	assert.Equal(t, "reporte-2026-08-28.csv", rendered.Filename)

	records, err := csv.NewReader(bytes.NewReader(rendered.Bytes)).ReadAll()
	require.NoError(t, err)

	// Заголовок, две позиции, итог
	require.Len(t, records, 4)
	assert.Equal(t, []string{"venta_id", "fecha", "producto", "cantidad", "precio", "subtotal"}, records[0])
	assert.Equal(t, []string{"1", "2026-08-28 10:30:00", "Vainilla", "2", "40.00", "80.00"}, records[1])
	assert.Equal(t, []string{"1", "2026-08-28 10:30:00", "Fresa", "1", "25.50", "25.50"}, records[2])
	assert.Equal(t, "total", records[3][0])
	assert.Equal(t, "105.50", records[3][5])
}

func TestRenderCSVEmptyDay(t *testing.T) {
	report := &usecase.DailyReportRes{
		Date:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Sales: []usecase.SaleDetail{},
	}

	rendered, err := NewRenderer().Render(report, "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(rendered.Bytes)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // только заголовок и итог
	assert.Equal(t, "0.00", records[1][5])
}

func TestRenderPDF(t *testing.T) {
	rendered, err := NewRenderer().Render(sampleReport(), "pdf")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", rendered.ContentType)
	assert.Equal(t, "reporte-2026-08-28.pdf", rendered.Filename)
	assert.True(t, bytes.HasPrefix(rendered.Bytes, []byte("%PDF")))
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := NewRenderer().Render(sampleReport(), "xlsx")
	assert.ErrorIs(t, err, e.ErrUnsupportedFormat)
}
