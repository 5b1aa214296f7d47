// Package pdf genera el estado de cuenta de una factura de materiales.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° Factura │ Fecha + Estado               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTES: Cliente (recargo %) │ Proveedor                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MONTOS: Base / Recargo / Total transacción                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEUDAS: Parte | Fecha | Monto                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el ID global + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa ledger.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	printer *message.Printer
}

// NewMarotoStatementGenerator construye el generador; los montos se formatean en español.
func NewMarotoStatementGenerator() *MarotoStatementGenerator {
	return &MarotoStatementGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, st *ledger.Statement) ([]byte, error) {
	if st == nil || st.Invoice == nil || st.Client == nil || st.Supplier == nil {
		return nil, fmt.Errorf("pdf: estado de cuenta incompleto")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Estado de cuenta factura %d", st.Invoice.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st.Invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(st.Client, st.Supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.amountsRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(debtsHeaderRow())
	m.AddRows(g.debtRows(st.Debts)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(st.Invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(inv *entity.MaterialsInvoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Factura de materiales N° %d", inv.ID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+inv.InvoiceDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Estado: "+string(inv.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9, Color: colorPrimary,
			}),
		),
	)
}

func partiesRow(c *entity.Client, s *entity.Supplier) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("PROVEEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(s.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

func (g *MarotoStatementGenerator) amountsRow(st *ledger.Statement) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	total := "sin transacción"
	if st.Transaction != nil {
		total = g.money(st.Transaction.Amount)
	}
	markupPct := st.Client.MarkupRate.Mul(decimal.NewFromInt(100))

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Monto base:"),
			text.New("Recargo del cliente:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("TOTAL TRANSACCIÓN:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 12, Color: colorPrimary}),
		),
		col.New(4).Add(
			value(g.money(st.Invoice.BaseAmount)),
			text.New(g.printer.Sprintf("%.2f %%", markupPct.InexactFloat64()), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 6}),
			text.New(total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 12, Color: colorPrimary}),
		),
	)
}

func debtsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Deudor", 4, align.Left),
		h("Registrada", 4, align.Center),
		h("Monto", 4, align.Right),
	)
}

func (g *MarotoStatementGenerator) debtRows(debts []*entity.Debt) []core.Row {
	if len(debts) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin deudas registradas", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(partyLabel(d.Party), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(d.CreatedDate.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(g.money(d.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func footerRow(inv *entity.MaterialsInvoice) core.Row {
	gid := relay.ToGlobalID(ledger.TypeInvoice, inv.ID)
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(gid, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("ID: "+gid, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("La deuda del cliente corresponde al monto con recargo; "+
				"la del proveedor, al monto base.", props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

// money formatea con separadores del español, ej. 12345.5 -> "$12.345,50".
func (g *MarotoStatementGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("$%.2f", d.InexactFloat64())
}

func partyLabel(party string) string {
	switch party {
	case entity.PartyClient:
		return "Cliente"
	case entity.PartySupplier:
		return "Proveedor"
	}
	return party
}
