package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	"github.com/lepikeman/qrenoo-booking/internal/api/middleware"
	"github.com/lepikeman/qrenoo-booking/internal/service/reservations"
)

const (
	msgInvalidReservID     = "identifiant de réservation invalide"
	msgReservationNotFound = "réservation introuvable"
	msgAccessDenied        = "accès refusé à cette réservation"
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

// Handle GET /api/v1/reservations/{reservationId}
// Защищённый маршрут: запись видна только своему профессионалу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAppointmentNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found: id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{id} - Failed: id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	authProID, _ := middleware.ProIDFromContext(r.Context())
	if authProID != result.ProfessionalID {
		h.logger.Warn("GET /reservations/{id} - Access denied: auth_pro=%d, owner_pro=%d",
			authProID, result.ProfessionalID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	h.logger.Info("GET /reservations/{id} - Fetched reservation id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
