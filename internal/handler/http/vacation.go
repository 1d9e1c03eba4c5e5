package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/vacation"
	"github.com/planilla-cr/planilla-backend-go/internal/handler/http/response"
	vacationservice "github.com/planilla-cr/planilla-backend-go/internal/service/vacation"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacationservice.Service
}

func NewVacationHandler(vacationService vacationservice.Service) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); !errs.IsEmpty() {
		response.HandleError(w, errs)
		return
	}

	resp, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vacation request filed", resp)
}

func (h *VacationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.vacationService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *VacationHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.vacationService.Balances(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *VacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vacation request ID is required", nil)
		return
	}

	if err := h.vacationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}
