package create_reservation

import (
	"errors"
	"net/http"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	"github.com/lepikeman/qrenoo-booking/internal/api/middleware"
	createReservation "github.com/lepikeman/qrenoo-booking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "corps de la requête invalide"
	msgInvalidDate          = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidTime          = "format d'heure invalide, attendu HH:MM"
	msgInvalidInput         = "données de réservation invalides"
	msgInvalidReservDate    = "date de réservation invalide"
	msgProfessionalClosed   = "le professionnel est fermé à cette date"
	msgInvalidTimeSlot      = "créneau horaire invalide"
	msgSlotNotAvailable     = "ce créneau n'est plus disponible"
	msgPreValidateForbidden = "la pré-validation est réservée au professionnel concerné"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Публичный маршрут; preValidated=true принимается только от
// аутентифицированного профессионала, чей X-Pro-ID совпадает с professionalId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PreValidated {
		proID, ok := middleware.ProIDFromRequest(r)
		if !ok || proID != req.ProfessionalID {
			h.logger.Warn("POST /reservations - Pre-validation denied: pro_id=%d, header_ok=%t",
				req.ProfessionalID, ok)
			handlers.RespondForbidden(w, msgPreValidateForbidden)
			return
		}
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.Date) == len("2006-01-02") {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: pro_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrProfessionalClosed):
			h.logger.Warn("POST /reservations - Professional closed: pro_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgProfessionalClosed)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: pro_id=%d, date=%s", req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidReservDate)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: pro_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: pro_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, pro_id=%d, confirmed=%t",
		result.ID, req.ProfessionalID, result.Confirmed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
