package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/usecase"
	"github.com/smthh4/cc13.1-finals-project/pkg/response"
	"github.com/smthh4/cc13.1-finals-project/pkg/shortid"
	"github.com/smthh4/cc13.1-finals-project/pkg/validator"
)

type PatientHandler struct {
	intakeUsecase  usecase.IntakeUsecase
	historyUsecase usecase.HistoryUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(
	intakeUsecase usecase.IntakeUsecase,
	historyUsecase usecase.HistoryUsecase,
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		intakeUsecase:  intakeUsecase,
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	checkedIn, err := h.intakeUsecase.CheckIn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPriority):
			response.Error(w, http.StatusBadRequest, "Priority level must be between 1 and 5", nil)
		case errors.Is(err, usecase.ErrNoDoctorsAvailable):
			response.Conflict(w, "No doctors are currently available")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrDoctorUnavailable):
			response.Conflict(w, "Chosen doctor is currently unavailable")
		case errors.Is(err, shortid.ErrExhausted):
			response.InternalServerError(w, "Failed to generate a patient id")
		default:
			response.InternalServerError(w, "Failed to check in patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient checked in successfully", checkedIn)
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients := h.historyUsecase.ListPatients(r.Context())
	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]

	history, err := h.historyUsecase.ViewHistory(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient history")
		return
	}

	response.Success(w, http.StatusOK, "History retrieved successfully", history)
}
