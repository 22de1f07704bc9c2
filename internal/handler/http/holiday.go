package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/holiday"
	"github.com/sawithr/sawit-hr-backend-go/internal/handler/http/response"
	holidayservice "github.com/sawithr/sawit-hr-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holidayservice.Service
}

func NewHolidayHandler(holidayService *holidayservice.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler. Without ?force=true, existing attendance
// on the date turns the call into a dry run answered with 409 so the client
// can confirm the overwrite.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := h.holidayService.Create(r.Context(), req, force)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Materialization.NeedsConfirmation {
		response.NeedsConfirmation(w, "Attendance records already exist on this date", map[string]interface{}{
			"conflict_count":    result.Materialization.ConflictCount,
			"existing_statuses": result.Materialization.ExistingStatuses,
		})
		return
	}

	response.Created(w, "Holiday created successfully", map[string]interface{}{
		"holiday":            result.Holiday,
		"materialized_count": result.Materialization.Written,
	})
}

// Get implements HolidayHandler.
func (h *HolidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	hol, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hol)
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	holidays, err := h.holidayService.ListRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	retracted, err := h.holidayService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", map[string]interface{}{
		"retracted_count": retracted,
	})
}
