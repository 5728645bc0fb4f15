package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetXLSX exports the extracted fields plus the product table to an
// .xlsx workbook, one field per row, products as a block underneath.
func SpreadsheetXLSX(data *ContractData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, "Dados do Contrato"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	name := "Dados do Contrato"

	rows := [][2]string{
		{"Contratante - Nome", data.ClientName},
		{"Contratante - RG", data.ClientRG},
		{"Contratante - CPF", data.ClientCPF},
		{"Contratante - Endereco", data.ClientAddress},
		{"Contratante - Telefone", data.ClientPhone},
		{"Contratante - Email", data.ClientEmail},
		{"Data do Evento", data.EventDate},
		{"Local do Evento", data.EventLocation},
		{"Valor Total do Pedido", data.OrderTotal},
		{"Data de Pagamento", data.PaymentDate},
		{"Forma de Pagamento", data.PaymentMethod},
		{"Como nos conheceu", data.Referral},
		{"Responsável", data.Responsible},
	}

	_ = f.SetCellValue(name, "A1", "Campo")
	_ = f.SetCellValue(name, "B1", "Informação Extraída")
	line := 2
	for _, r := range rows {
		_ = f.SetCellValue(name, fmt.Sprintf("A%d", line), r[0])
		_ = f.SetCellValue(name, fmt.Sprintf("B%d", line), r[1])
		line++
	}

	if len(data.Items) > 0 {
		line += 2
		headers := []string{"Quantidade", "Produto", "Valor Unitário", "Valor Total Item"}
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, line)
			_ = f.SetCellValue(name, cell, h)
		}
		line++
		for _, item := range data.Items {
			cols := []string{item.Quantity, item.Product, item.UnitPrice, item.LineTotal}
			for col, v := range cols {
				cell, _ := excelize.CoordinatesToCellName(col+1, line)
				_ = f.SetCellValue(name, cell, v)
			}
			line++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
