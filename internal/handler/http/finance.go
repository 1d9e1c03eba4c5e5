package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/finance"
	"github.com/planilla-cr/planilla-backend-go/internal/handler/http/response"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
	financeservice "github.com/planilla-cr/planilla-backend-go/internal/service/finance"
)

type FinanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type FinanceHandlerImpl struct {
	financeService financeservice.Service
}

func NewFinanceHandler(financeService financeservice.Service) FinanceHandler {
	return &FinanceHandlerImpl{financeService: financeService}
}

func (h *FinanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTransaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); !errs.IsEmpty() {
		response.HandleError(w, errs)
		return
	}

	resp, err := h.financeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Transaction recorded", resp)
}

func (h *FinanceHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month query parameter must use the YYYY-MM format", nil)
		return
	}

	resp, err := h.financeService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *FinanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month query parameter must use the YYYY-MM format", nil)
		return
	}

	resp, err := h.financeService.SummaryByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *FinanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transaction ID is required", nil)
		return
	}

	if err := h.financeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}
