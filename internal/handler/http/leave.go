package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/handler/http/response"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
	leaveservice "github.com/planilla-cr/planilla-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leaveservice.Service
}

func NewLeaveHandler(leaveService leaveservice.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := req.Validate(); !errs.IsEmpty() {
		response.HandleError(w, errs)
		return
	}

	resp, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave recorded", resp)
}

func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *LeaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if month != "" && !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must use the YYYY-MM format", nil)
		return
	}

	resp, err := h.leaveService.ListByEmployee(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}
