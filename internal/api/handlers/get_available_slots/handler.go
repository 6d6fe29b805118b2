package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	"github.com/lepikeman/qrenoo-booking/internal/domain"
	getAvailableSlots "github.com/lepikeman/qrenoo-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidProID = "identifiant du professionnel invalide"
	msgMissingDate  = "le paramètre date est obligatoire"
	msgInvalidDate  = "format de date invalide, attendu YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{proId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	proID, err := strconv.ParseInt(vars["proId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProfessionalID: proID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput),
			errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /professionals/{id}/available-slots - Failed: pro_id=%d, error=%v", proID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/available-slots - %d slots for pro_id=%d, date=%s",
		len(result.Slots), proID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
