// Package pdf implementa a geração do relatório kardex de um produto:
// cabeçalho com os dados do produto e estoque atual, seguido da tabela de
// movimentações (data, tipo, quantidade, usuário, motivo).
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do produto        │  Estoque atual             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Descrição / Preço / Gerado em                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Tipo | Quant. | Usuário | Motivo             │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/josevesidio/university-backend-dev-project/internal/application/inventory"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.KardexPDFGenerator = (*MarotoKardexGenerator)(nil)

// MarotoKardexGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator constrói o gerador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF gera o PDF e devolve seus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	product *entity.Product,
	movements []*entity.MovementDetail,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de Produto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productInfoRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, d := range movements {
		m.AddRows(movementRow(d))
	}
	if len(movements) == 0 {
		m.AddRows(row.New(6).Add(
			text.NewCol(12, "Nenhuma movimentação registrada.",
				props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar PDF do kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(product *entity.Product) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("KARDEX — "+product.Name,
				props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Estoque atual: %d", product.Quantity),
				props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
		),
	)
}

func productInfoRow(product *entity.Product) core.Row {
	desc := product.Description
	if desc == "" {
		desc = "—"
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Descrição: "+desc, props.Text{Size: 8, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("Preço: "+product.Price.StringFixed(2), props.Text{Size: 8, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("Produto: "+product.ID, props.Text{Size: 6, Color: colorGray, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(3, "Data", header),
		text.NewCol(2, "Tipo", header),
		text.NewCol(1, "Quant.", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right}),
		text.NewCol(3, "Usuário", header),
		text.NewCol(3, "Motivo", header),
	)
}

func movementRow(d *entity.MovementDetail) core.Row {
	cell := props.Text{Size: 8}
	reason := d.Reason
	if reason == "" {
		reason = "—"
	}
	return row.New(6).Add(
		text.NewCol(3, d.CreatedAt.Format("02/01/2006 15:04"), cell),
		text.NewCol(2, d.Type, cell),
		text.NewCol(1, fmt.Sprintf("%d", d.Quantity), props.Text{Size: 8, Align: align.Right}),
		text.NewCol(3, d.UserName, cell),
		text.NewCol(3, reason, cell),
	)
}
