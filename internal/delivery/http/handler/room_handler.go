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

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

func (h *RoomHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.AddRoom(r.Context(), &req)
	if err != nil {
		if errors.Is(err, shortid.ErrExhausted) {
			response.InternalServerError(w, "Failed to generate a room id")
			return
		}
		response.InternalServerError(w, "Failed to add room")
		return
	}

	response.Success(w, http.StatusCreated, "Room added successfully", room)
}

func (h *RoomHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.roomUsecase.ListRooms(r.Context())
	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *RoomHandler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID := vars["id"]

	err := h.roomUsecase.RemoveRoom(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			response.NotFound(w, "Room not found")
		case errors.Is(err, usecase.ErrRoomOccupied):
			response.Conflict(w, "Room is currently occupied")
		default:
			response.InternalServerError(w, "Failed to remove room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room removed successfully", nil)
}
