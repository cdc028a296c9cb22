// Package http is the thin transport wrapper around the voice pipeline.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/cart"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/catalog"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/intent"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/service"
)

// VoiceProcessor is what the handler needs from the orchestrator.
type VoiceProcessor interface {
	ProcessVoice(ctx context.Context, text string) (*service.Result, error)
}

type VoiceHandler struct {
	svc     VoiceProcessor
	catalog catalog.Client
	cart    cart.Store
	timeout time.Duration
	log     *logrus.Logger
}

func NewVoiceHandler(svc VoiceProcessor, catalogClient catalog.Client, cartStore cart.Store, timeout time.Duration, log *logrus.Logger) *VoiceHandler {
	return &VoiceHandler{
		svc:     svc,
		catalog: catalogClient,
		cart:    cartStore,
		timeout: timeout,
		log:     log,
	}
}

// --- request / response shapes ---

type VoiceRequestDTO struct {
	Text string `json:"text"`
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type CartResponse struct {
	Cart  []domain.CartLine `json:"cart"`
	Total float64           `json:"total"`
}

type AddResponse struct {
	Intent intent.Intent     `json:"intent"`
	Added  *string           `json:"added"`
	Cart   []domain.CartLine `json:"cart"`
}

type RemoveResponse struct {
	Intent  intent.Intent     `json:"intent"`
	Removed *string           `json:"removed"`
	Cart    []domain.CartLine `json:"cart"`
}

type FindResponse struct {
	Intent      intent.Intent `json:"intent"`
	Suggestions []string      `json:"suggestions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// GetProducts handles GET /products, proxying the upstream catalog.
func (h *VoiceHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.FetchAll(ctx)
	if err != nil {
		h.log.WithError(err).Error("catalog fetch failed")
		respondError(w, http.StatusInternalServerError, "catalog_unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

// GetCart handles GET /cart.
func (h *VoiceHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	lines, total := h.cart.Summary()
	respondJSON(w, http.StatusOK, CartResponse{Cart: lines, Total: total})
}

// ProcessVoice handles POST /process_voice.
func (h *VoiceHandler) ProcessVoice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req VoiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.svc.ProcessVoice(ctx, req.Text)
	switch {
	case errors.Is(err, service.ErrEmptyText):
		respondError(w, http.StatusBadRequest, "empty_text", "text is required")
		return
	case errors.Is(err, catalog.ErrUnavailable):
		h.log.WithError(err).Error("catalog fetch failed")
		respondError(w, http.StatusBadGateway, "catalog_unavailable", err.Error())
		return
	case err != nil:
		h.log.WithError(err).Error("voice command failed")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	switch result.Intent {
	case intent.Add:
		respondJSON(w, http.StatusOK, AddResponse{Intent: result.Intent, Added: result.Added, Cart: result.Cart})
	case intent.Remove:
		respondJSON(w, http.StatusOK, RemoveResponse{Intent: result.Intent, Removed: result.Removed, Cart: result.Cart})
	default:
		respondJSON(w, http.StatusOK, FindResponse{Intent: result.Intent, Suggestions: result.Suggestions})
	}
}

// Health handles GET /health.
func (h *VoiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
