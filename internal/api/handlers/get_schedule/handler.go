package get_schedule

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
	msgInvalidProID     = "identifiant du professionnel invalide"
	msgScheduleNotFound = "aucun horaire configuré pour ce professionnel"
	msgAccessDenied     = "accès refusé aux horaires de ce professionnel"
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

// Handle GET /api/v1/professionals/{proId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	proID, err := strconv.ParseInt(vars["proId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProID)
		return
	}

	authProID, _ := middleware.ProIDFromContext(r.Context())
	if authProID != proID {
		h.logger.Warn("GET /professionals/{id}/schedule - Access denied: auth_pro=%d, requested_pro=%d",
			authProID, proID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.Get(r.Context(), proID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("GET /professionals/{id}/schedule - Not found: pro_id=%d", proID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProID)

		default:
			h.logger.Error("GET /professionals/{id}/schedule - Failed: pro_id=%d, error=%v", proID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/schedule - Fetched schedule for pro_id=%d", proID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
