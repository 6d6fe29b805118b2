package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	"github.com/lepikeman/qrenoo-booking/internal/service/reservations"
)

const (
	msgInvalidReservID     = "identifiant de réservation invalide"
	msgReservationNotFound = "réservation introuvable"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/cancel
// Запись удаляется безвозвратно; клиенту уходит письмо об отмене
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrAppointmentNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Not found: id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("POST /reservations/{id}/cancel - Failed: id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/cancel - Cancelled: id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
