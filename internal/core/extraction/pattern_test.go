package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContract = `Divinos Doces Finos
CONTRATO

CONTRATANTE: Sr(a) Maria Souza, brasileiro(a), portador(a) da cédula de RG: 30.315.655-7 e CPF: 123.456.789-00, residente e domiciliado(a) na Rua das Flores, 100 - Tel. (11) 91234-5678.
CONTRATADO: Divinos Doces Finos, inscrito sob o CNPJ: 18.826.801/0001-76.
E-
mail: maria@example.com

CLÁUSULA 1 - PRODUTOS CONTRATADOS
1 Bem-casado R$ 5,00 R$ 5,00
2 Bolo R$ 50,00 R$ 100,00
TOTAL: R$ 105,00

CLÁUSULA 2 - VALOR E FORMA DE PAGAMENTO
O valor total de R$ 105,00 referente aos produtos acima citados, foram pagos no dia 10/05/2025 via Pix.

CLÁUSULA 11 - DATA E LOCAL DO EVENTO
O evento acontecerá no dia: 20/12/2025 - Local do evento: Buffet Jardim
Como nos conheceu: Instagram

RESPONSÁVEL PELO CONTRATO: Ana Lima
São Paulo, 10/05/2025
`

func TestPatternExtractFullContract(t *testing.T) {
	rec, err := NewPatternStrategy().Extract(context.Background(), sampleContract)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Maria Souza", rec.Party.Name)
	assert.NotEqual(t, NotAvailable, rec.Party.RG)
	assert.Equal(t, "123.456.789-00", rec.Party.CPF)
	assert.Equal(t, "Rua das Flores, 100", rec.Party.Address)
	assert.Equal(t, "(11) 91234-5678", rec.Party.Phone)
	assert.Equal(t, "maria@example.com", rec.Party.Email)

	require.Len(t, rec.LineItems, 2)
	assert.Equal(t, "R$ 105,00", rec.OrderTotal)
	assert.Equal(t, "10/05/2025", rec.PaymentDate)
	assert.Equal(t, "via Pix", rec.PaymentMethod)
	assert.Equal(t, "20/12/2025", rec.EventDate)
	assert.Equal(t, "Buffet Jardim", rec.EventLocation)
	assert.Equal(t, "Ana Lima", rec.Responsible)
}

func TestPatternCurrencyStripping(t *testing.T) {
	text := "CLÁUSULA 1 - PRODUTOS CONTRATADOS\n2 Bolo R$ 50,00 R$ 100,00\nTOTAL: R$ 100,00\n"
	rec, err := NewPatternStrategy().Extract(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, rec.LineItems, 1)
	assert.Equal(t, LineItem{
		Quantity:    "2",
		Description: "Bolo",
		UnitPrice:   "50,00",
		LineTotal:   "100,00",
	}, rec.LineItems[0])
	// Raw total keeps its currency marker for display.
	assert.Equal(t, "R$ 100,00", rec.OrderTotal)
}

func TestPatternLineItemsPreserveSourceOrder(t *testing.T) {
	text := "CLÁUSULA 1 - PRODUTOS CONTRATADOS\n" +
		"1 Alfajor R$ 1,00 R$ 1,00\n" +
		"2 Brigadeiro R$ 2,00 R$ 4,00\n" +
		"3 Camafeu R$ 3,00 R$ 9,00\n" +
		"TOTAL: R$ 14,00\n"
	rec, err := NewPatternStrategy().Extract(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, rec.LineItems, 3)
	assert.Equal(t, "Alfajor", rec.LineItems[0].Description)
	assert.Equal(t, "Brigadeiro", rec.LineItems[1].Description)
	assert.Equal(t, "Camafeu", rec.LineItems[2].Description)
}

func TestPatternMalformedRowsAreSkipped(t *testing.T) {
	text := "CLÁUSULA 1 - PRODUTOS CONTRATADOS\n" +
		"1 Bolo R$ 10,00 R$ 10,00\n" +
		"esta linha não é um item\n" +
		"2 Doce sem preço\n" +
		"TOTAL: R$ 10,00\n"
	rec, err := NewPatternStrategy().Extract(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, rec.LineItems, 1)
	assert.Equal(t, "Bolo", rec.LineItems[0].Description)
}

func TestPatternEmailLabelVariants(t *testing.T) {
	for name, text := range map[string]string{
		"plain":   "Email: a@b.com\n",
		"wrapped": "E-\nmail: a@b.com\n",
	} {
		t.Run(name, func(t *testing.T) {
			rec, err := NewPatternStrategy().Extract(context.Background(), text)
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", rec.Party.Email)
		})
	}
}

func TestPatternPartySpanIsolation(t *testing.T) {
	// A CPF after the counterparty header must not leak into the party.
	text := "CONTRATANTE: Sr(a) João Dias, brasileiro(a).\n" +
		"CONTRATADO: Divinos Doces Finos, CPF: 111.222.333-44, São Paulo.\n"
	rec, err := NewPatternStrategy().Extract(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, NotAvailable, rec.Party.CPF)
	assert.Equal(t, "João Dias", rec.Party.Name)
}

func TestPatternUnmatchedFieldsKeepSentinels(t *testing.T) {
	rec, err := NewPatternStrategy().Extract(context.Background(), "texto qualquer sem nenhuma âncora")
	require.NoError(t, err)

	assert.Equal(t, NotAvailable, rec.Party.Name)
	assert.Equal(t, NotAvailable, rec.Party.Email)
	assert.Equal(t, NotAvailable, rec.EventDate)
	assert.Equal(t, NotAvailable, rec.EventLocation)
	assert.Equal(t, NotAvailable, rec.PaymentDate)
	assert.Equal(t, NotAvailable, rec.PaymentMethod)
	assert.Equal(t, NotAvailable, rec.OrderTotal)
	assert.Equal(t, NotAvailable, rec.Responsible)
	assert.Equal(t, NotAvailable, rec.ReferralSource)
	assert.NotNil(t, rec.LineItems)
	assert.Empty(t, rec.LineItems)
}

func TestPatternMatchesAcrossLineWraps(t *testing.T) {
	text := "CONTRATANTE: Sr(a) Maria\nClara Souza, brasileiro(a)\nCONTRATADO: alguém\n"
	rec, err := NewPatternStrategy().Extract(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "Maria\nClara Souza", rec.Party.Name)
}
