package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/panier-backend/api/responses"
	"github.com/angelmondragon/panier-backend/pkg/auth"
	"github.com/angelmondragon/panier-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
	"github.com/angelmondragon/panier-backend/pkg/logger"
)

// SessionHeader carries the signed cart session token in both directions.
const SessionHeader = "X-Cart-Session"

// CartSession resolves the caller's cart session from the session token. A missing,
// expired or tampered token starts a new session; the current token is always echoed back.
func CartSession(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return cartSession(cfg, logg, time.Now)
}

func cartSession(cfg config.SessionConfig, logg *logger.Logger, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := strings.TrimSpace(r.Header.Get(SessionHeader))
			var sessionID uuid.UUID
			if token != "" {
				claims, err := auth.ParseSessionToken(cfg, token)
				if err == nil {
					sessionID = claims.SessionID
				} else if logg != nil {
					logg.Debug(logg.WithField(ctx, "reason", err.Error()), "session.token_rejected")
				}
			}

			if sessionID == uuid.Nil {
				sessionID = uuid.New()
				minted, err := auth.MintSessionToken(cfg, now(), sessionID)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue session token"))
					return
				}
				token = minted
			}

			w.Header().Set(SessionHeader, token)

			sid := sessionID.String()
			ctx = WithSessionID(ctx, sid)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sid)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
