package render

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// ContractDocx renders the full house contract (clauses 1 to 12) as a .docx
// stream ready to send as an attachment.
func ContractDocx(data *ContractData) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText("Divinos Doces Finos").Size("36").Bold()
	w.AddParagraph().AddText("CONTRATO")
	w.AddParagraph()

	p := w.AddParagraph()
	p.AddText("CONTRATANTE: ").Bold()
	p.AddText(fmt.Sprintf(
		"Sr(a) %s, brasileiro(a), portador(a) da cédula de RG: %s e CPF: %s, residente e domiciliado(a) na %s - Tel. %s.",
		orDefault(data.ClientName, "N/A"), orDefault(data.ClientRG, "N/A"),
		orDefault(data.ClientCPF, "N/A"), orDefault(data.ClientAddress, "N/A"),
		orDefault(data.ClientPhone, "N/A")))

	p = w.AddParagraph()
	p.AddText("CONTRATADO: ").Bold()
	p.AddText("Divinos Doces Finos, inscrito sob o CNPJ: 18.826.801/0001-76, com sede na Rua Curupacê, 392 Mooca, São Paulo SP representado pela sócia proprietária Damaris Talita Macedo, portador do RG: 30.315.655-7.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 1 - PRODUTOS CONTRATADOS")
	if len(data.Items) > 0 {
		addProductsTable(w, data.Items)
		w.AddParagraph().AddText(fmt.Sprintf("TOTAL: R$ %s", orDefault(data.OrderTotal, "N/A")))
	} else {
		w.AddParagraph().AddText("Nenhum produto adicionado.")
	}

	addHeading(w, "CLÁUSULA 2 - VALOR E FORMA DE PAGAMENTO")
	w.AddParagraph().AddText(fmt.Sprintf(
		"O valor total de R$ %s referente aos produtos acima citados, foram pagos no dia %s %s.",
		orDefault(data.OrderTotal, "N/A"), orDefault(data.PaymentDate, "N/A"),
		orDefault(data.PaymentMethod, "N/A")))

	addHeading(w, "CLÁUSULA 3 - EMBALAGEM DOS DOCES - FORMINHAS")
	w.AddParagraph().AddText("Os doces finos são entregues em forminhas no formato caixeta, na cor branca, todos decorados e prontos para o consumo. Os brigadeiros serão entregues em forminhas na cor branca nº 5.")
	w.AddParagraph().AddText("Caso o CONTRATANTE opte por embalagens decorativas, o mesmo deverá enviar ao CONTRATADO com no máximo 15 dias de antecedência ao evento, que entregará os doces finos dentro das embalagens decoradas, prontos para o consumo. Após esse prazo não recebemos.")
	w.AddParagraph().AddText("Por haver um manejo especial nas forminhas no modelo de flor e um custo maior de compra de caixas para armazenamento dos doces, é cobrado uma taxa adicional de R$0,10 por unidade, como consta abaixo:")
	w.AddParagraph().AddText("ATÉ 100 DOCES + R$10,00 / ATÉ 200 DOCES + R$20,00 ATÉ 300 DOCES + R$30,00 / ATÉ 400 DOCES + R$40,00 ACIMA DE 500 DOCES + R$50,00 e assim sucessivamente")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 4 - EMBALAGENS DOS BEM-CASADOS")
	w.AddParagraph().AddText("Os bem-casados são entregues em papel crepom crepe plus, com celofane e fita de cetim de 7mm, nas cores enviadas na tabela completa. Os papéis perolados da linha especial serão cobrados R$ 0,40 a mais por unidade e os papéis dourado, prata, tiffany e marsala serão cobrados R$ 0,20 a mais por unidade, por se tratar de um papel especial e com maior custo. Tudo está discriminado na tabela de cores.")
	w.AddParagraph().AddText("Caso o CONTRATANTE opte por incluir, medalhinhas, tercinhos, renda, juta, tag ou outro item decorativo, deverá consultar antecipadamente a disponibilidade e todos os itens são colados com cola quente. A entrega dos itens deverá ocorrer com no máximo 15 dias antes do evento. Após esse prazo não recebemos. Por haver um manejo especial dos itens, será cobrado uma taxa adicional de R$0,10, como consta abaixo: ATÉ 100 BEM-CASADOS + R$10,00 / ATÉ 200 BEM-CASADOS + R$20,00 ATÉ 300 BEM-CASADOS + R$30,00 / ATÉ 400 BEM-CASADOS + R$40,00 ACIMA DE 500 BEM-CASADOS + R$50,00 e assim sucessivamente")
	w.AddParagraph().AddText("Caso opte pela aplicação de dois ou mais itens, será cobrado o valor de cada item.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 5 - ALTERAÇÕES")
	w.AddParagraph().AddText("Não recebemos forminhas, modificações, alterações em contrato em hipótese alguma na semana do evento.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 6 - ADIÇÃO DE NOVOS ITENS")
	w.AddParagraph().AddText("Caso haja a necessidade do CONTRATANTE adicionar novos itens ao pedido fechado, o valor dos produtos será de acordo com o valor vigente no momento da adição, mesmo que o contrato tenha sido fechado com valores promocionais.")
	w.AddParagraph().AddText("A adição de produtos ocorre de acordo com a disponibilidade de agenda. Não havendo disponibilidade para novos produtos ou pedidos, não será possível a complementação.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 7 - RETIRADA OU SERVIÇO DE ENTREGA")
	w.AddParagraph().AddText("A entrega ou retirada dos itens acima, deverá ser definida pela CONTRATANTE até 15 dias antes do evento. Em caso de entrega será cobrada taxa de deslocamento de R$ 6,00 por km ou a taxa mínima de R$50,00 (sujeito a disponibilidade na data e horário desejados). Não fazemos entregas aos domingos e feriados. A retirada dos produtos ocorre de segunda-feira à sábado, das 9h às 16h30, mediante agendamento com o setor responsável, não havendo expediente aos domingos e feriados.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 8 - ARMAZENAMENTO")
	w.AddParagraph().AddText("Todos os doces e/ou bem-casados deverão, obrigatoriamente, ser armazenados em geladeira até o momento da montagem da mesa para o evento. Validade 3 a 5 dias em geladeira.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 9 - LOCAÇÃO (SE HOUVER)")
	w.AddParagraph().AddText("Caso haja locação de bolo cenográfico, o CONTRATANTE deverá deixar uma caução no valor de R$300,00 ou o valor em dinheiro, como forma de garantia. O bolo cenográfico sendo locado e deverá retornar nas mesmas condições, em até 4 dias após a data da retirada. Na devolução do bolo cenográfico, será devolvido o valor total. Em caso de avarias será cobrado R$ 100,00 por andar (dependendo do modelo) para refazer cada andar danificado. O CONTRATANTE deverá tomar todos os cuidados necessários como: não expor ao calor excessivo, água ou qualquer outro líquido, não deverá apertar, amassar, não deixar convidados colocarem as mãos e deverá ser transportado com cuidado, pegando somente pela base de madeira.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 10 - REMARCAÇÃO")
	w.AddParagraph().AddText("Em caso de REMARCAÇÃO de data do evento superior a 6 meses, será cobrado um reequilíbrio econômico e financeiro de 10% sobre o valor do contrato, a cada 6 meses de diferença da data marcada inicialmente.")
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 11 - DATA E LOCAL DO EVENTO")
	w.AddParagraph().AddText(fmt.Sprintf("O evento acontecerá no dia: %s - Local do evento: %s",
		orDefault(data.EventDate, "N/A"), orDefault(data.EventLocation, "N/A")))
	w.AddParagraph().AddText(fmt.Sprintf("Como nos conheceu: %s", orDefault(data.Referral, "N/A")))
	w.AddParagraph()

	addHeading(w, "CLÁUSULA 12 - CANCELAMENTO")
	w.AddParagraph().AddText("A CONTRATANTE pagará multa de 30% do valor do contrato em caso de cancelamento. O CONTRATADO pagará multa de 100% do valor do contrato em caso de cancelamento.")
	w.AddParagraph()

	w.AddParagraph().AddText(fmt.Sprintf("RESPONSÁVEL PELO CONTRATO: %s", orDefault(data.Responsible, "N/A")))
	w.AddParagraph().AddText(fmt.Sprintf("São Paulo, %s", orDefault(data.PaymentDate, "N/A")))
	w.AddParagraph()
	w.AddParagraph().AddText("CONTRATANTE").Bold()
	w.AddParagraph().AddText("______________________________")
	w.AddParagraph().AddText("CONTRATADO").Bold()
	w.AddParagraph().AddText("______________________________")

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addHeading(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size("28").Bold()
}

func addProductsTable(w *docx.Docx, items []Item) {
	tbl := w.AddTable(len(items)+1, 4, 0, nil)

	headers := []string{"Quantidade", "Produto", "Valor Unitário", "Valor Total"}
	for col, h := range headers {
		tbl.TableRows[0].TableCells[col].AddParagraph().AddText(h).Bold()
	}
	for i, item := range items {
		cells := tbl.TableRows[i+1].TableCells
		cells[0].AddParagraph().AddText(item.Quantity)
		cells[1].AddParagraph().AddText(item.Product)
		cells[2].AddParagraph().AddText(item.UnitPrice)
		cells[3].AddParagraph().AddText(item.LineTotal)
	}
}
