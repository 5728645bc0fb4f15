package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/divinosdoces/contratos-api/internal/config"
	"github.com/divinosdoces/contratos-api/internal/core"
	"github.com/divinosdoces/contratos-api/internal/core/extraction"
	"github.com/divinosdoces/contratos-api/internal/render"
)

// ContractExtractor is the extraction core's public entry point as the
// handlers see it.
type ContractExtractor interface {
	Extract(ctx context.Context, data []byte, mode extraction.Mode) (*extraction.Record, error)
}

type ContractHandler struct {
	extractor    ContractExtractor
	objectclient core.ObjectClient
	cfg          *config.Config
}

func NewContractHandler(extractor ContractExtractor, objectclient core.ObjectClient, cfg *config.Config) *ContractHandler {
	return &ContractHandler{extractor: extractor, objectclient: objectclient, cfg: cfg}
}

// Upload receives a contract PDF, extracts its data with the requested
// analysis mode and returns it for review before saving as an order. The
// original file is archived to S3 while the extraction runs.
func (h *ContractHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(32 << 20)

	userID, ok := r.Context().Value("user_id").(string)
	if !ok {
		http.Error(w, "user_id not found in context", http.StatusUnauthorized)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "invalid file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		http.Error(w, "only PDF uploads are accepted", http.StatusBadRequest)
		return
	}

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "could not read file", http.StatusBadRequest)
		return
	}

	mode := extraction.ParseMode(r.FormValue("analysis_mode"))

	reqCtx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	var (
		rec        *extraction.Record
		storageURL string
	)
	g, gctx := errgroup.WithContext(reqCtx)
	g.Go(func() error {
		var err error
		rec, err = h.extractor.Extract(gctx, pdfBytes, mode)
		return err
	})
	g.Go(func() error {
		if h.objectclient == nil {
			return nil
		}
		key := fmt.Sprintf("%s/%s/%s", userID, uuid.NewString(), filepath.Base(header.Filename))
		url, err := h.objectclient.UploadFile(gctx, h.cfg.BucketName, key, pdfBytes, "application/pdf")
		if err != nil {
			// Archiving is best-effort; extraction still answers the user.
			log.Printf("contract archive failed: %v", err)
			return nil
		}
		storageURL = url
		return nil
	})
	if err := g.Wait(); err != nil {
		http.Error(w, fmt.Sprintf("extraction failed: %v", err), http.StatusInternalServerError)
		return
	}

	if rec == nil {
		http.Error(w, "não foi possível extrair dados do contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":       "Dados extraídos com sucesso! Revise para salvar.",
		"extractedData": reviewPayload(rec),
		"storageUrl":    storageURL,
	})
}

// reviewPayload remaps the core's record onto the key names the review
// screen expects. The renderers and the frontend never see the core's own
// field names.
func reviewPayload(rec *extraction.Record) map[string]any {
	items, _ := json.Marshal(rec.LineItems)
	return map[string]any{
		"Contratante": map[string]string{
			"Nome":     rec.Party.Name,
			"RG":       rec.Party.RG,
			"CPF":      rec.Party.CPF,
			"Telefone": rec.Party.Phone,
			"Email":    rec.Party.Email,
			"Endereco": rec.Party.Address,
		},
		"Data_do_Evento":          rec.EventDate,
		"Local_do_Evento":         rec.EventLocation,
		"produtosContratadosJson": string(items),
		"Data_de_Pagamento":       rec.PaymentDate,
		"Valor_Total_do_Pedido":   rec.OrderTotal,
		"FormaDePagamento":        rec.PaymentMethod,
		"Responsavel":             rec.Responsible,
		"Como nos conheceu":       rec.ReferralSource,
	}
}

// generateRequest carries the form fields of the panel's contract editor.
type generateRequest struct {
	ClientName    string        `json:"contratanteNome"`
	ClientRG      string        `json:"contratanteRg"`
	ClientCPF     string        `json:"contratanteCpf"`
	ClientAddress string        `json:"contratanteEndereco"`
	ClientPhone   string        `json:"contratanteTelefone"`
	ClientEmail   string        `json:"contratanteEmail"`
	EventDate     string        `json:"dataEvento"`
	EventLocation string        `json:"localEvento"`
	Items         []render.Item `json:"produtosContratados"`
	OrderTotal    string        `json:"valorTotalPedidoContrato"`
	PaymentDate   string        `json:"dataPagamentoContrato"`
	PaymentMethod string        `json:"formaPagamento"`
	Referral      string        `json:"comoConheceu"`
	Responsible   string        `json:"responsavelContrato"`
	Format        string        `json:"formato_desejado"`
}

func (req *generateRequest) contractData() *render.ContractData {
	return &render.ContractData{
		ClientName:    req.ClientName,
		ClientRG:      req.ClientRG,
		ClientCPF:     req.ClientCPF,
		ClientAddress: req.ClientAddress,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		EventDate:     req.EventDate,
		EventLocation: req.EventLocation,
		Items:         req.Items,
		OrderTotal:    req.OrderTotal,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Referral:      req.Referral,
		Responsible:   req.Responsible,
	}
}

// Generate renders a fresh contract from form data as DOCX (default) or PDF
// and streams it back as an attachment.
func (h *ContractHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	data := req.contractData()
	base := render.FileBaseName("contrato", data.ClientName, time.Now())

	switch req.Format {
	case "pdf":
		out, err := render.ContractPDF(data)
		if err != nil {
			log.Printf("contract pdf failed: %v", err)
			http.Error(w, "erro interno ao gerar o documento PDF", http.StatusInternalServerError)
			return
		}
		sendAttachment(w, out, base+".pdf", "application/pdf")
	default:
		out, err := render.ContractDocx(data)
		if err != nil {
			log.Printf("contract docx failed: %v", err)
			http.Error(w, "erro interno ao gerar o documento DOCX", http.StatusInternalServerError)
			return
		}
		sendAttachment(w, out, base+".docx",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	}
}

// DeliveryReport renders the signed-on-pickup delivery report for an order.
func (h *ContractHandler) DeliveryReport(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	out, err := render.DeliveryReportDocx(req.contractData(), time.Now())
	if err != nil {
		log.Printf("delivery report failed: %v", err)
		http.Error(w, "erro interno ao gerar o relatório", http.StatusInternalServerError)
		return
	}
	base := render.FileBaseName("relatorio_entrega", req.ClientName, time.Now())
	sendAttachment(w, out, base+".docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
}

// Export writes the contract fields and product table to a spreadsheet.
func (h *ContractHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	out, err := render.SpreadsheetXLSX(req.contractData())
	if err != nil {
		log.Printf("spreadsheet export failed: %v", err)
		http.Error(w, "erro interno ao gerar a planilha", http.StatusInternalServerError)
		return
	}
	base := render.FileBaseName("contrato", req.ClientName, time.Now())
	sendAttachment(w, out, base+".xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// archiveKey validates the key query parameter against the calling user.
// Upload namespaces every archived contract under "<user_id>/", so a key
// outside that prefix belongs to someone else.
func (h *ContractHandler) archiveKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.objectclient == nil {
		http.Error(w, "contract archive is not configured", http.StatusServiceUnavailable)
		return "", false
	}

	userID, ok := r.Context().Value("user_id").(string)
	if !ok {
		http.Error(w, "user_id not found in context", http.StatusUnauthorized)
		return "", false
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing query parameter key", http.StatusBadRequest)
		return "", false
	}
	if !strings.HasPrefix(key, userID+"/") {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}
	return key, true
}

// DownloadArchive re-downloads an archived contract PDF by its storage key.
func (h *ContractHandler) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	key, ok := h.archiveKey(w, r)
	if !ok {
		return
	}

	data, err := h.objectclient.GetFile(r.Context(), h.cfg.BucketName, key)
	if err != nil {
		log.Printf("archive download failed for %s: %v", key, err)
		http.Error(w, "archived contract not found", http.StatusNotFound)
		return
	}

	sendAttachment(w, data, filepath.Base(key), "application/pdf")
}

// DeleteArchive removes an archived contract PDF.
func (h *ContractHandler) DeleteArchive(w http.ResponseWriter, r *http.Request) {
	key, ok := h.archiveKey(w, r)
	if !ok {
		return
	}

	if err := h.objectclient.DeleteFile(r.Context(), h.cfg.BucketName, key); err != nil {
		log.Printf("archive delete failed for %s: %v", key, err)
		http.Error(w, "could not delete archived contract", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sendAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
