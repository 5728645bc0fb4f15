package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/divinosdoces/contratos-api/internal/core"
	"github.com/divinosdoces/contratos-api/internal/models"
)

type OrderHandler struct {
	dbclient core.DbClient
	embedder core.EmbeddingProvider
}

func NewOrderHandler(dbclient core.DbClient, embedder core.EmbeddingProvider) *OrderHandler {
	return &OrderHandler{dbclient: dbclient, embedder: embedder}
}

type createOrderRequest struct {
	ClientName     string `json:"contratanteNome"`
	ClientCPF      string `json:"contratanteCpf"`
	ClientPhone    string `json:"contratanteTelefone"`
	ClientEmail    string `json:"contratanteEmail"`
	EventDate      string `json:"dataEvento"`
	EventLocation  string `json:"localEvento"`
	ItemsJSON      string `json:"produtosContratadosJson"`
	OrderTotal     string `json:"valorTotalPedido"`
	PaymentDate    string `json:"dataPagamento"`
	PaymentMethod  string `json:"formaPagamento"`
	Responsible    string `json:"responsavelContrato"`
	ReferralSource string `json:"comoConheceu"`
	SourceURL      string `json:"storageUrl"`
}

// Create persists a reviewed extraction as an order. A summary embedding is
// attached for similarity search when the embedder is configured; its
// absence never blocks the save.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(string)
	if !ok {
		http.Error(w, "user_id not found in context", http.StatusUnauthorized)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.ItemsJSON == "" {
		req.ItemsJSON = "[]"
	}

	order := &models.Order{
		ID:             uuid.NewString(),
		UserID:         userID,
		ClientName:     req.ClientName,
		ClientCPF:      req.ClientCPF,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		EventDate:      req.EventDate,
		EventLocation:  req.EventLocation,
		ItemsJSON:      req.ItemsJSON,
		OrderTotal:     req.OrderTotal,
		PaymentDate:    req.PaymentDate,
		PaymentMethod:  req.PaymentMethod,
		Responsible:    req.Responsible,
		ReferralSource: req.ReferralSource,
		SourceURL:      req.SourceURL,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if h.embedder != nil {
		vecs, err := h.embedder.EmbedTexts(r.Context(), []string{orderSummary(order)})
		if err != nil {
			log.Printf("order embedding failed for %s: %v", order.ID, err)
		} else if len(vecs) == 1 {
			order.Embedding = vecs[0]
		}
	}

	if err := h.dbclient.CreateOrder(r.Context(), order); err != nil {
		log.Printf("DB insert failed for order %s: %v", order.ID, err)
		http.Error(w, fmt.Sprintf("failed to store order: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// Get returns a single order. Another user's order answers 404, not 403, so
// the endpoint does not confirm which IDs exist.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(string)
	if !ok {
		http.Error(w, "user_id not found in context", http.StatusUnauthorized)
		return
	}

	order, err := h.dbclient.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if order == nil || order.UserID != userID {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(string)
	if !ok {
		http.Error(w, "user_id not found in context", http.StatusUnauthorized)
		return
	}

	orders, err := h.dbclient.ListOrdersByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// Search embeds the free-text query and returns the nearest orders.
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(string)
	if !ok {
		http.Error(w, "user_id not found in context", http.StatusUnauthorized)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}
	if h.embedder == nil {
		http.Error(w, "search is not configured", http.StatusServiceUnavailable)
		return
	}

	vecs, err := h.embedder.EmbedTexts(r.Context(), []string{query})
	if err != nil || len(vecs) == 0 {
		http.Error(w, fmt.Sprintf("embedding failed: %v", err), http.StatusInternalServerError)
		return
	}

	orders, err := h.dbclient.SearchOrders(r.Context(), userID, vecs[0], 10)
	if err != nil {
		http.Error(w, fmt.Sprintf("search failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func orderSummary(o *models.Order) string {
	return fmt.Sprintf("Cliente %s, evento em %s no dia %s, total %s, itens: %s",
		o.ClientName, o.EventLocation, o.EventDate, o.OrderTotal, o.ItemsJSON)
}
