package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ContractPDF renders the contract directly as a PDF, mirroring the DOCX
// layout. Core fonts are cp1252, so all text goes through the unicode
// translator to keep the Portuguese accents.
func ContractPDF(data *ContractData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	heading := func(s string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(s), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	para := func(s string) {
		pdf.MultiCell(0, 5, tr(s), "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Divinos Doces Finos", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "CONTRATO", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	para(fmt.Sprintf(
		"CONTRATANTE: Sr(a) %s, brasileiro(a), portador(a) da cédula de RG: %s e CPF: %s, residente e domiciliado(a) na %s - Tel. %s.",
		orDefault(data.ClientName, "N/A"), orDefault(data.ClientRG, "N/A"),
		orDefault(data.ClientCPF, "N/A"), orDefault(data.ClientAddress, "N/A"),
		orDefault(data.ClientPhone, "N/A")))
	para("CONTRATADO: Divinos Doces Finos, inscrito sob o CNPJ: 18.826.801/0001-76, com sede na Rua Curupacê, 392 Mooca, São Paulo SP representado pela sócia proprietária Damaris Talita Macedo, portador do RG: 30.315.655-7.")

	heading("CLÁUSULA 1 - PRODUTOS CONTRATADOS")
	if len(data.Items) > 0 {
		writeProductsGrid(pdf, tr, data.Items)
		para(fmt.Sprintf("TOTAL: R$ %s", orDefault(data.OrderTotal, "N/A")))
	} else {
		para("Nenhum produto adicionado.")
	}

	heading("CLÁUSULA 2 - VALOR E FORMA DE PAGAMENTO")
	para(fmt.Sprintf("O valor total de R$ %s referente aos produtos acima citados, foram pagos no dia %s %s.",
		orDefault(data.OrderTotal, "N/A"), orDefault(data.PaymentDate, "N/A"),
		orDefault(data.PaymentMethod, "N/A")))

	heading("CLÁUSULA 11 - DATA E LOCAL DO EVENTO")
	para(fmt.Sprintf("O evento acontecerá no dia: %s - Local do evento: %s",
		orDefault(data.EventDate, "N/A"), orDefault(data.EventLocation, "N/A")))
	para(fmt.Sprintf("Como nos conheceu: %s", orDefault(data.Referral, "N/A")))

	heading("CLÁUSULA 12 - CANCELAMENTO")
	para("A CONTRATANTE pagará multa de 30% do valor do contrato em caso de cancelamento. O CONTRATADO pagará multa de 100% do valor do contrato em caso de cancelamento.")

	pdf.Ln(6)
	para(fmt.Sprintf("RESPONSÁVEL PELO CONTRATO: %s", orDefault(data.Responsible, "N/A")))
	para(fmt.Sprintf("São Paulo, %s", orDefault(data.PaymentDate, "N/A")))
	pdf.Ln(8)
	para("CONTRATANTE")
	para("______________________________")
	para("CONTRATADO")
	para("______________________________")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProductsGrid(pdf *gofpdf.Fpdf, tr func(string) string, items []Item) {
	widths := []float64{25, 85, 40, 40}
	headers := []string{"Quantidade", "Produto", "Valor Unitário", "Valor Total"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		cols := []string{item.Quantity, item.Product, item.UnitPrice, item.LineTotal}
		for i, c := range cols {
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(2)
}
