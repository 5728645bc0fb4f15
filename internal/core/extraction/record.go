package extraction

// Sentinel values used in place of truly absent fields. Every record field is
// always populated, so renderers never branch on missing keys. The two
// strategies carry different vocabularies and callers must not assume a
// single one.
const (
	NotAvailable = "N/A"
	NotFound     = "Não encontrado"
	VerifyInDoc  = "Verificar no Doc."
)

// Party holds the contracting party's identity fields.
type Party struct {
	Name    string `json:"Nome"`
	RG      string `json:"RG"`
	CPF     string `json:"CPF"`
	Phone   string `json:"Telefone"`
	Email   string `json:"Email"`
	Address string `json:"Endereco"`
}

// LineItem is one row of the contracted-products table. All values keep the
// source's original formatting; unit and line totals have the leading "R$"
// stripped by the pattern strategy.
type LineItem struct {
	Quantity    string `json:"Quantidade"`
	Description string `json:"Produto"`
	UnitPrice   string `json:"Valor Unitário"`
	LineTotal   string `json:"Valor Total Item"`
}

// Record is the normalized extraction result shared by both strategies and
// consumed by every document renderer. It is built fresh per extraction call
// and handed off immutably.
type Record struct {
	Party          Party      `json:"Contratante"`
	EventDate      string     `json:"Data_do_Evento"`
	EventLocation  string     `json:"Local_do_Evento"`
	LineItems      []LineItem `json:"ProdutosContratados"`
	PaymentDate    string     `json:"Data_de_Pagamento"`
	PaymentMethod  string     `json:"FormaDePagamento"`
	OrderTotal     string     `json:"Valor_Total_do_Pedido"`
	Responsible    string     `json:"Responsavel"`
	ReferralSource string     `json:"Como_nos_conheceu"`
}

// newPatternRecord returns a record with every field at the pattern
// strategy's sentinel and an empty (valid, distinct from unknown) item list.
func newPatternRecord() *Record {
	return &Record{
		Party: Party{
			Name: NotAvailable, RG: NotAvailable, CPF: NotAvailable,
			Phone: NotAvailable, Email: NotAvailable, Address: NotAvailable,
		},
		EventDate:      NotAvailable,
		EventLocation:  NotAvailable,
		LineItems:      []LineItem{},
		PaymentDate:    NotAvailable,
		PaymentMethod:  NotAvailable,
		OrderTotal:     NotAvailable,
		Responsible:    NotAvailable,
		ReferralSource: NotAvailable,
	}
}

// newStatisticalRecord carries the mixed sentinel vocabulary of the fallback
// analysis: fields the tagger can miss say "Não encontrado", fields it never
// fills ask for manual verification.
func newStatisticalRecord() *Record {
	return &Record{
		Party: Party{
			Name: NotFound, RG: NotAvailable, CPF: NotAvailable,
			Phone: NotAvailable, Email: NotAvailable, Address: NotAvailable,
		},
		EventDate:      NotFound,
		EventLocation:  NotFound,
		LineItems:      []LineItem{},
		PaymentDate:    VerifyInDoc,
		PaymentMethod:  VerifyInDoc,
		OrderTotal:     NotFound,
		Responsible:    NotAvailable,
		ReferralSource: NotAvailable,
	}
}
