package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/division"
	"github.com/sawithr/sawit-hr-backend-go/internal/domain/master/position"
	"github.com/sawithr/sawit-hr-backend-go/internal/handler/http/response"
	"github.com/sawithr/sawit-hr-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateDivision(w http.ResponseWriter, r *http.Request)
	ListDivisions(w http.ResponseWriter, r *http.Request)
	UpdateDivision(w http.ResponseWriter, r *http.Request)
	DeleteDivision(w http.ResponseWriter, r *http.Request)

	CreatePosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	divisionService *master.DivisionService
	positionService *master.PositionService
}

func NewMasterHandler(divisionService *master.DivisionService, positionService *master.PositionService) MasterHandler {
	return &MasterHandlerImpl{
		divisionService: divisionService,
		positionService: positionService,
	}
}

// CreateDivision implements MasterHandler.
func (h *MasterHandlerImpl) CreateDivision(w http.ResponseWriter, r *http.Request) {
	var req division.CreateDivisionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDivision decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	d, err := h.divisionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Division created successfully", d)
}

// ListDivisions implements MasterHandler.
func (h *MasterHandlerImpl) ListDivisions(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.divisionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, divisions)
}

// UpdateDivision implements MasterHandler.
func (h *MasterHandlerImpl) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Division ID is required", nil)
		return
	}

	var req division.UpdateDivisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDivision decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	d, err := h.divisionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Division updated successfully", d)
}

// DeleteDivision implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Division ID is required", nil)
		return
	}

	if err := h.divisionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Division deleted successfully", nil)
}

// CreatePosition implements MasterHandler.
func (h *MasterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.positionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", p)
}

// ListPositions implements MasterHandler.
func (h *MasterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.positionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, positions)
}

// UpdatePosition implements MasterHandler.
func (h *MasterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Position ID is required", nil)
		return
	}

	var req position.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	p, err := h.positionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", p)
}

// DeletePosition implements MasterHandler.
func (h *MasterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Position ID is required", nil)
		return
	}

	if err := h.positionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}
