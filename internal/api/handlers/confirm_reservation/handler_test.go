package confirm_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	confirmReservation "github.com/lepikeman/qrenoo-booking/internal/usecase/confirm_reservation"
)

type stubUseCase struct {
	resp *confirmReservation.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *confirmReservation.Request) (*confirmReservation.Response, error) {
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc ConfirmReservationUseCase, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations/{reservationId}/confirm",
		NewHandler(uc, noopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "not found", ucErr: confirmReservation.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "already confirmed", ucErr: confirmReservation.ErrAlreadyConfirmed, wantStatus: http.StatusConflict},
		{name: "code expired", ucErr: confirmReservation.ErrCodeExpired, wantStatus: http.StatusGone},
		{name: "invalid code", ucErr: confirmReservation.ErrInvalidCode, wantStatus: http.StatusBadRequest},
		{name: "internal error", ucErr: confirmReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.ucErr},
				"/api/v1/reservations/42/confirm", `{"code":"123456"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &confirmReservation.Response{ID: 42, Confirmed: true}}

	rec := doRequest(t, uc, "/api/v1/reservations/42/confirm", `{"code":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"confirmed":true`)
}

func TestHandle_BadReservationID(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, "/api/v1/reservations/abc/confirm", `{"code":"123456"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, "/api/v1/reservations/42/confirm", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
