package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/usecase"
	"github.com/smthh4/cc13.1-finals-project/pkg/response"
	"github.com/smthh4/cc13.1-finals-project/pkg/validator"
)

type TreatmentHandler struct {
	intakeUsecase usecase.IntakeUsecase
	validator     *validator.CustomValidator
}

func NewTreatmentHandler(intakeUsecase usecase.IntakeUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		intakeUsecase: intakeUsecase,
		validator:     validator,
	}
}

func (h *TreatmentHandler) TreatNext(w http.ResponseWriter, r *http.Request) {
	var req dto.TreatNextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	outcome, err := h.intakeUsecase.TreatNext(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrQueueEmpty):
			response.Conflict(w, "No patients in queue")
		case errors.Is(err, usecase.ErrNoRoomsAvailable):
			response.Conflict(w, "No rooms available, patient returned to queue")
		default:
			response.InternalServerError(w, "Failed to treat next patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment cycle finished", outcome)
}

func (h *TreatmentHandler) QueueStatus(w http.ResponseWriter, r *http.Request) {
	status := h.intakeUsecase.QueueStatus(r.Context())
	response.Success(w, http.StatusOK, "Queue status retrieved successfully", status)
}
