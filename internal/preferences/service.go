package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/panier-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
)

const themeKey = "theme"

// ThemeState is what the toggle button renders.
type ThemeState struct {
	Theme        enums.Theme
	Pressed      bool
	Announcement string
}

// Service reads and toggles the persisted theme preference.
type Service interface {
	Theme(ctx context.Context, clientID string) (*ThemeState, error)
	ToggleTheme(ctx context.Context, clientID string) (*ThemeState, error)
}

type service struct {
	store Store
}

func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("preference store required")
	}
	return &service{store: store}, nil
}

func (s *service) Theme(ctx context.Context, clientID string) (*ThemeState, error) {
	theme, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return newThemeState(theme), nil
}

func (s *service) ToggleTheme(ctx context.Context, clientID string) (*ThemeState, error) {
	current, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	next := current.Toggled()
	if err := s.store.Set(ctx, clientID, themeKey, next.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save theme preference")
	}
	return newThemeState(next), nil
}

// load treats a missing or unreadable stored value as the light theme.
func (s *service) load(ctx context.Context, clientID string) (enums.Theme, error) {
	if strings.TrimSpace(clientID) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "client id is required")
	}
	raw, err := s.store.Get(ctx, clientID, themeKey)
	if errors.Is(err, ErrNotSet) {
		return enums.ThemeLight, nil
	}
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load theme preference")
	}
	theme, err := enums.ParseTheme(raw)
	if err != nil {
		return enums.ThemeLight, nil
	}
	return theme, nil
}

func newThemeState(theme enums.Theme) *ThemeState {
	state := &ThemeState{Theme: theme, Pressed: theme == enums.ThemeDark}
	if state.Pressed {
		state.Announcement = "Dark theme enabled"
	} else {
		state.Announcement = "Light theme enabled"
	}
	return state
}
