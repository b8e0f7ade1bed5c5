// Package pdf genera el recibo en PDF de una venta registrada.
//
// Layout (página A6 vertical, estilo tirilla):
//
//	┌──────────────────────────────┐
//	│  NOMBRE DE LA TIENDA         │
//	│  Recibo de venta N° 000123   │
//	│  ──────────────────────────  │
//	│  Producto / Cant / P.Unit    │
//	│  ──────────────────────────  │
//	│  TOTAL                       │
//	│  Cajero + fecha              │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appledger "github.com/tu-usuario/punto-venta/internal/application/ledger"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

var _ appledger.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ledger.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre de la tienda.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	if storeName == "" {
		storeName = "punto-venta"
	}
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, sale *entity.Sale) ([]byte, error) {
	if sale == nil {
		return nil, fmt.Errorf("pdf: venta nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(8).Add(
		col.New(12).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center}),
		),
	))
	m.AddRows(row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Recibo de venta N° %06d", sale.ID), props.Text{Size: 9, Align: align.Center, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(row.New(6).Add(
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(4).Add(text.New("P. unitario", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	))
	m.AddRows(row.New(6).Add(
		col.New(6).Add(text.New(sale.ProductName, props.Text{Size: 8})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", sale.Quantity), props.Text{Size: 8, Align: align.Right})),
		col.New(4).Add(text.New("$ "+sale.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	))

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11})),
		col.New(6).Add(text.New("$ "+sale.TotalPrice.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right})),
	))

	cashier := sale.CashierName
	if cashier == "" {
		cashier = sale.CashierEmail
	}
	m.AddRows(row.New(6).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("Cajero: %s - %s", cashier, sale.CreatedAt.Format("02/01/2006 15:04")),
				props.Text{Size: 7, Color: colorGray},
			),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}
