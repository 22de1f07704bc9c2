package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/handler/http/response"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/validator"
	attendanceservice "github.com/sawithr/sawit-hr-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ListByEmployee implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	start, ok := validator.IsValidDate(r.URL.Query().Get("start_date"))
	if !ok {
		response.BadRequest(w, "start_date is required (YYYY-MM-DD)", nil)
		return
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !ok {
		response.BadRequest(w, "end_date is required (YYYY-MM-DD)", nil)
		return
	}

	records, err := h.attendanceService.ListByEmployeeRange(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
