package extraction

import (
	"context"
	"regexp"
	"strings"
)

// Anchors tuned to the house contract template. Matching is case-insensitive
// and dot matches newlines, so a field split across a line wrap is still
// captured.
var (
	rePartySpan = regexp.MustCompile(`(?is)CONTRATANTE:([\s\S]*?)CONTRATADO:`)
	rePartyName = regexp.MustCompile(`(?is)Sr\(a\)\s*(.*?),\s*brasileiro`)
	rePartyRG   = regexp.MustCompile(`(?is)RG:\s*([\d.\s-]+?)`)
	rePartyCPF  = regexp.MustCompile(`(?is)CPF:\s*([\d.\s-]+?),`)
	rePartyAddr = regexp.MustCompile(`(?is)domiciliado\(a\) na (.*?) - Tel\.`)
	rePartyTel  = regexp.MustCompile(`(?is)Tel\.\s*(.*?)\.`)

	// The "E-" alternative tolerates the label being hyphen-wrapped onto the
	// next line by the PDF text layer.
	reEmail = regexp.MustCompile(`(?is)(?:E-\s*\n?mail|Email):\s*([\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,})`)

	reProductBlock = regexp.MustCompile(`(?is)CLÁUSULA 1 - PRODUTOS CONTRATADOS([\s\S]*?)TOTAL:\s*R\$`)
	// The explicit R$ before each price is what disambiguates the ungreedy
	// description from its trailing values.
	reProductRow = regexp.MustCompile(`(?m)^\s*(\d+)\s+(.*?)\s+(R\$\s*[\d,.]+)\s+(R\$\s*[\d,.]+)\s*$`)

	reOrderTotal    = regexp.MustCompile(`(?is)TOTAL:\s*(R\$\s*[\d,.]+)`)
	rePaymentDate   = regexp.MustCompile(`(?is)pagos no dia\s*([\d/]+)`)
	rePaymentMethod = regexp.MustCompile(`(?is)pagos no dia\s*[\d/]+\s*(.*?)\.`)
	reEventClause   = regexp.MustCompile(`(?is)O evento acontecerá no dia:\s*(.*?)\s*-\s*Local do evento:\s*(.*?)Como nos conheceu:`)
	reResponsible   = regexp.MustCompile(`(?is)RESPONSÁVEL PELO CONTRATO:\s*(.*?)\s*\n`)
)

// PatternStrategy is the deterministic parser for contracts our own system
// generated. It trades generality for accuracy: every anchor below assumes
// the fixed clause layout of the house template.
type PatternStrategy struct{}

func NewPatternStrategy() *PatternStrategy {
	return &PatternStrategy{}
}

// Extract scans the text with the template anchors. Each field is
// independently optional; an unmatched anchor leaves its sentinel in place
// and never blocks the others. The returned record always has every field
// populated and the method never fails.
func (s *PatternStrategy) Extract(_ context.Context, text string) (*Record, error) {
	rec := newPatternRecord()

	if span := rePartySpan.FindStringSubmatch(text); span != nil {
		partyText := span[1]
		setMatch(&rec.Party.Name, rePartyName, partyText)
		setMatch(&rec.Party.RG, rePartyRG, partyText)
		setMatch(&rec.Party.CPF, rePartyCPF, partyText)
		setMatch(&rec.Party.Address, rePartyAddr, partyText)
		setMatch(&rec.Party.Phone, rePartyTel, partyText)
	}

	// Email is searched over the full text, not the party span.
	setMatch(&rec.Party.Email, reEmail, text)

	if block := reProductBlock.FindStringSubmatch(text); block != nil {
		for _, row := range reProductRow.FindAllStringSubmatch(block[1], -1) {
			rec.LineItems = append(rec.LineItems, LineItem{
				Quantity:    strings.TrimSpace(row[1]),
				Description: strings.TrimSpace(row[2]),
				UnitPrice:   stripCurrency(row[3]),
				LineTotal:   stripCurrency(row[4]),
			})
		}
	}

	// The order total keeps its R$ marker for display; only the per-item
	// prices above are stripped.
	setMatch(&rec.OrderTotal, reOrderTotal, text)
	setMatch(&rec.PaymentDate, rePaymentDate, text)
	setMatch(&rec.PaymentMethod, rePaymentMethod, text)
	if m := reEventClause.FindStringSubmatch(text); m != nil {
		rec.EventDate = strings.TrimSpace(m[1])
		rec.EventLocation = strings.TrimSpace(m[2])
	}
	setMatch(&rec.Responsible, reResponsible, text)

	return rec, nil
}

func setMatch(dst *string, re *regexp.Regexp, text string) {
	if m := re.FindStringSubmatch(text); m != nil {
		*dst = strings.TrimSpace(m[1])
	}
}

func stripCurrency(v string) string {
	return strings.TrimSpace(strings.ReplaceAll(v, "R$", ""))
}
