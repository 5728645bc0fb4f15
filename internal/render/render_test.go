package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleData() *ContractData {
	return &ContractData{
		ClientName:    "Maria Souza",
		ClientRG:      "30.315.655-7",
		ClientCPF:     "123.456.789-00",
		ClientAddress: "Rua das Flores, 100",
		ClientPhone:   "(11) 91234-5678",
		ClientEmail:   "maria@example.com",
		EventDate:     "20/12/2025",
		EventLocation: "Buffet Jardim",
		Items: []Item{
			{Quantity: "2", Product: "Bolo", UnitPrice: "50,00", LineTotal: "100,00"},
			{Quantity: "100", Product: "Bem-casado", UnitPrice: "5,00", LineTotal: "500,00"},
		},
		OrderTotal:    "600,00",
		PaymentDate:   "10/05/2025",
		PaymentMethod: "via Pix",
		Referral:      "Instagram",
		Responsible:   "Ana Lima",
	}
}

func TestContractDocx(t *testing.T) {
	out, err := ContractDocx(sampleData())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	// docx is a zip container
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestContractDocxWithoutItems(t *testing.T) {
	data := sampleData()
	data.Items = nil
	out, err := ContractDocx(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestDeliveryReportDocx(t *testing.T) {
	out, err := DeliveryReportDocx(sampleData(), time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestContractPDF(t *testing.T) {
	out, err := ContractPDF(sampleData())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSpreadsheetXLSX(t *testing.T) {
	out, err := SpreadsheetXLSX(sampleData())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Dados do Contrato", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", got)
}

func TestFileBaseName(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "contrato_maria_souza_20250510120000", FileBaseName("contrato", "Maria Souza", now))
	assert.Equal(t, "relatorio_contrato_20250510120000", FileBaseName("relatorio", "", now))
}
