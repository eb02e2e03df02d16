package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/panier-backend/api/middleware"
	"github.com/angelmondragon/panier-backend/api/responses"
	"github.com/angelmondragon/panier-backend/internal/preferences"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
	"github.com/angelmondragon/panier-backend/pkg/logger"
)

type themeResponse struct {
	Theme        string `json:"theme"`
	Pressed      bool   `json:"pressed"`
	Announcement string `json:"announcement"`
}

func ThemeFetch(svc preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return themeHandler(svc, logg, func(ctx context.Context, clientID string) (*preferences.ThemeState, error) {
		return svc.Theme(ctx, clientID)
	})
}

// ThemeToggle flips and persists the theme, returning the announcement for screen readers.
func ThemeToggle(svc preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return themeHandler(svc, logg, func(ctx context.Context, clientID string) (*preferences.ThemeState, error) {
		return svc.ToggleTheme(ctx, clientID)
	})
}

func themeHandler(svc preferences.Service, logg *logger.Logger, action func(ctx context.Context, clientID string) (*preferences.ThemeState, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "preferences service unavailable"))
			return
		}

		clientID := middleware.SessionIDFromContext(r.Context())
		state, err := action(r.Context(), clientID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, themeResponse{
			Theme:        state.Theme.String(),
			Pressed:      state.Pressed,
			Announcement: state.Announcement,
		})
	}
}
