package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	"github.com/lepikeman/qrenoo-booking/internal/api/middleware"
	"github.com/lepikeman/qrenoo-booking/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidProID       = "identifiant du professionnel invalide"
	msgInvalidSchedule    = "horaires invalides"
	msgInvalidInterval    = "intervalle de créneau invalide, valeurs acceptées : 30 ou 60 minutes"
	msgInvalidTimeRange   = "l'heure de fermeture doit être après l'heure d'ouverture"
	msgAccessDenied       = "accès refusé aux horaires de ce professionnel"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{proId}/schedule
// Полная замена расписания: присланный набор правил становится единственным
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	proID, err := strconv.ParseInt(vars["proId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProID)
		return
	}

	authProID, _ := middleware.ProIDFromContext(r.Context())
	if authProID != proID {
		h.logger.Warn("PUT /professionals/{id}/schedule - Access denied: auth_pro=%d, requested_pro=%d",
			authProID, proID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(proID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInterval):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid interval: pro_id=%d", proID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid time range: pro_id=%d", proID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid schedule: pro_id=%d, error=%v", proID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /professionals/{id}/schedule - Failed: pro_id=%d, error=%v", proID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/schedule - Schedule replaced for pro_id=%d", proID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
