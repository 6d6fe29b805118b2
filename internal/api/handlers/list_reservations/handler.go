package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
	"github.com/lepikeman/qrenoo-booking/internal/api/middleware"
	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/internal/service/reservations"
	"github.com/lepikeman/qrenoo-booking/internal/service/reservations/models"
)

const (
	msgInvalidProID  = "paramètre professionalId invalide"
	msgMissingDates  = "le paramètre dates est obligatoire"
	msgInvalidDates  = "format de dates invalide, attendu YYYY-MM-DD[,YYYY-MM-DD...]"
	msgAccessDenied  = "accès refusé à l'agenda de ce professionnel"
	msgInvalidFilter = "paramètres de filtrage invalides"
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

// Handle GET /api/v1/reservations?professionalId=&dates=YYYY-MM-DD[,...]
// Защищённый маршрут: X-Pro-ID должен совпадать с professionalId -
// агенда профессионала видна только ему самому
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	proIDStr := r.URL.Query().Get("professionalId")
	proID, err := strconv.ParseInt(proIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProID)
		return
	}

	authProID, _ := middleware.ProIDFromContext(r.Context())
	if authProID != proID {
		h.logger.Warn("GET /reservations - Access denied: auth_pro=%d, requested_pro=%d", authProID, proID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	datesParam := r.URL.Query().Get("dates")
	if datesParam == "" {
		h.logger.Warn("GET /reservations - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	var dates []time.Time
	for _, part := range strings.Split(datesParam, ",") {
		date, err := time.Parse(domain.DateFormat, strings.TrimSpace(part))
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid date %q: %v", part, err)
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		dates = append(dates, date)
	}

	result, err := h.service.List(r.Context(), &models.ListReservationsRequest{
		ProfessionalID: proID,
		Dates:          dates,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations - Failed: pro_id=%d, error=%v", proID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - %d reservations for pro_id=%d", len(result.Reservations), proID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
