package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Item is one row of the contracted-products table as the review screen
// submitted it.
type Item struct {
	Quantity  string `json:"Quantidade"`
	Product   string `json:"Produto"`
	UnitPrice string `json:"Valor Unitário"`
	LineTotal string `json:"Valor Total Item"`
}

// ContractData is the input shared by every document renderer. The handler
// builds it from the frontend's field names; renderers only do key lookup
// here, never on raw request JSON.
type ContractData struct {
	ClientName    string
	ClientRG      string
	ClientCPF     string
	ClientAddress string
	ClientPhone   string
	ClientEmail   string
	EventDate     string
	EventLocation string
	Items         []Item
	OrderTotal    string
	PaymentDate   string
	PaymentMethod string
	Referral      string
	Responsible   string
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w-]`)

// FileBaseName builds a download name like "contrato_maria_souza_20250510120000"
// with anything unsafe in the client name replaced.
func FileBaseName(prefix, clientName string, now time.Time) string {
	if clientName == "" {
		clientName = "contrato"
	}
	safe := strings.ToLower(unsafeFilenameChars.ReplaceAllString(clientName, "_"))
	return fmt.Sprintf("%s_%s_%s", prefix, safe, now.Format("20060102150405"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
