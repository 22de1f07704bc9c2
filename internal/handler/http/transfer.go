package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/transfer"
	"github.com/sawithr/sawit-hr-backend-go/internal/handler/http/response"
	transferservice "github.com/sawithr/sawit-hr-backend-go/internal/service/transfer"
)

type TransferHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type TransferHandlerImpl struct {
	transferService *transferservice.Service
}

func NewTransferHandler(transferService *transferservice.Service) TransferHandler {
	return &TransferHandlerImpl{transferService: transferService}
}

// Submit implements TransferHandler.
func (h *TransferHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req transfer.CreateTransferRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	requestedBy, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	t, err := h.transferService.Submit(r.Context(), req, requestedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transfer submitted successfully", t)
}

// Get implements TransferHandler.
func (h *TransferHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	t, err := h.transferService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// List implements TransferHandler. Listing first sweeps due transfers so a
// stale approved transfer completes on view, matching the workflow-entry
// trigger model.
func (h *TransferHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.transferService.AutoCompleteDue(r.Context(), time.Now()); err != nil {
		slog.Error("auto-complete sweep failed", "error", err)
	}

	filter := transfer.TransferFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	filter.Page = page

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	filter.Limit = limit

	transfers, total, err := h.transferService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, transfers, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	})
}

// Approve implements TransferHandler.
func (h *TransferHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	approverID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	t, err := h.transferService.Approve(r.Context(), id, approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer approved successfully", t)
}

// Reject implements TransferHandler.
func (h *TransferHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	approverID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req transfer.RejectTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.transferService.Reject(r.Context(), id, approverID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer rejected successfully", t)
}

// Complete implements TransferHandler.
func (h *TransferHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	t, err := h.transferService.Complete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer completed successfully", t)
}
