package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lepikeman/qrenoo-booking/internal/api/handlers"
)

// HeaderProID заголовок с ID аутентифицированного профессионала.
// Заголовок проставляется доверенным прокси - сам сервис его не проверяет
const HeaderProID = "X-Pro-ID"

const msgMissingProID = "en-tête X-Pro-ID manquant ou invalide"

type proIDKey struct{}

// Auth middleware для защищённых маршрутов: требует валидный X-Pro-ID
// и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderProID)
		proID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || proID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingProID)
			return
		}

		ctx := context.WithValue(r.Context(), proIDKey{}, proID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ProIDFromContext возвращает ID профессионала из контекста.
// Второе значение false, если запрос пришёл не через Auth middleware
func ProIDFromContext(ctx context.Context) (int64, bool) {
	proID, ok := ctx.Value(proIDKey{}).(int64)
	return proID, ok
}

// ProIDFromRequest читает X-Pro-ID напрямую из запроса.
// Используется на публичных маршрутах, где заголовок опционален
func ProIDFromRequest(r *http.Request) (int64, bool) {
	proID, err := strconv.ParseInt(r.Header.Get(HeaderProID), 10, 64)
	if err != nil || proID <= 0 {
		return 0, false
	}
	return proID, true
}
