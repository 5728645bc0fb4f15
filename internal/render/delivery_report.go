package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fumiama/go-docx"
)

// DeliveryReportDocx renders the delivery report handed to the driver and
// signed on pickup.
func DeliveryReportDocx(data *ContractData, issuedAt time.Time) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText("RELATÓRIO DE ENTREGA").Size("36").Bold()
	w.AddParagraph().AddText(fmt.Sprintf("Nome do Cliente: %s", orDefault(data.ClientName, "Não encontrado")))
	w.AddParagraph().AddText(fmt.Sprintf("Data do Evento: %s", orDefault(data.EventDate, "Não informada")))
	w.AddParagraph().AddText(fmt.Sprintf("Local do Evento: %s", orDefault(data.EventLocation, "Não informado")))
	w.AddParagraph().AddText(fmt.Sprintf("Data de Emissão: %s", issuedAt.Format("02/01/2006")))
	w.AddParagraph()
	w.AddParagraph().AddText("Produtos Contratados:")

	if len(data.Items) > 0 {
		addProductsTable(w, data.Items)
	} else {
		w.AddParagraph().AddText("Nenhum produto encontrado.")
	}

	w.AddParagraph()
	w.AddParagraph().AddText(fmt.Sprintf("Valor Total do Pedido: R$ %s", orDefault(data.OrderTotal, "Não encontrado")))
	w.AddParagraph()
	w.AddParagraph().AddText("Assinaturas:")
	w.AddParagraph()
	w.AddParagraph().AddText("______________________________")
	w.AddParagraph().AddText("Responsável pela Entrega")
	w.AddParagraph()
	w.AddParagraph().AddText("______________________________")
	w.AddParagraph().AddText("Responsável pela Retirada")

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}
