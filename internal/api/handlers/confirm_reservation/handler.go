package confirm_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	confirmReservation "github.com/lepikeman/qrenoo-booking/internal/usecase/confirm_reservation"
)

const (
	msgInvalidRequestBody  = "corps de la requête invalide"
	msgInvalidReservID     = "identifiant de réservation invalide"
	msgInvalidCode         = "code de confirmation invalide"
	msgCodeExpired         = "le code de confirmation a expiré, veuillez réserver à nouveau"
	msgReservationNotFound = "réservation introuvable"
	msgAlreadyConfirmed    = "cette réservation est déjà confirmée"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservID)
		return
	}

	var req ConfirmReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmReservation.Request{
		AppointmentID: reservationID,
		Code:          req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmReservation.ErrAppointmentNotFound):
			h.logger.Warn("POST /reservations/{id}/confirm - Not found: id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, confirmReservation.ErrAlreadyConfirmed):
			h.logger.Warn("POST /reservations/{id}/confirm - Already confirmed: id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)

		case errors.Is(err, confirmReservation.ErrCodeExpired):
			h.logger.Warn("POST /reservations/{id}/confirm - Code expired: id=%d", reservationID)
			handlers.RespondError(w, http.StatusGone, msgCodeExpired)

		case errors.Is(err, confirmReservation.ErrInvalidCode),
			errors.Is(err, confirmReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/confirm - Invalid code: id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("POST /reservations/{id}/confirm - Failed: id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/confirm - Confirmed: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
