package controllers

import (
	"net/http"

	"github.com/angelmondragon/panier-backend/api/responses"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
	"github.com/angelmondragon/panier-backend/pkg/logger"
)

type colorGenerator interface {
	RandomColor() string
}

func PaletteRandom(gen colorGenerator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gen == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "palette unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"color": gen.RandomColor()})
	}
}
