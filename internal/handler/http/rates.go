package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
	"github.com/planilla-cr/planilla-backend-go/internal/handler/http/response"
	ratesservice "github.com/planilla-cr/planilla-backend-go/internal/service/rates"
)

type RatesHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type RatesHandlerImpl struct {
	ratesService ratesservice.Service
}

func NewRatesHandler(ratesService ratesservice.Service) RatesHandler {
	return &RatesHandlerImpl{ratesService: ratesService}
}

func (h *RatesHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ratesService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *RatesHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req rates.UpdateRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRates decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); !errs.IsEmpty() {
		response.HandleError(w, errs)
		return
	}

	resp, err := h.ratesService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *RatesHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ratesService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
