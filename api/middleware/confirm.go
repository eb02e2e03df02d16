package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/angelmondragon/panier-backend/api/responses"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
	"github.com/angelmondragon/panier-backend/pkg/logger"
)

// ConfirmHeader is how the client reports that the shopper confirmed a destructive action.
const ConfirmHeader = "X-Confirm"

// RequireConfirmation rejects the request unless ConfirmHeader parses as true.
func RequireConfirmation(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			confirmed, err := strconv.ParseBool(strings.TrimSpace(r.Header.Get(ConfirmHeader)))
			if err != nil || !confirmed {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "confirmation required").
						WithDetails(map[string]string{"header": ConfirmHeader}))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
