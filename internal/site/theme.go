package site

import (
	"context"
	"fmt"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/db"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// Themes reads and writes color-scheme preferences.
type Themes struct {
	store db.Store
}

func NewThemes(store db.Store) *Themes {
	return &Themes{store: store}
}

// ColorScheme returns the client's stored scheme, or automatic when none is
// stored.
func (t *Themes) ColorScheme(ctx context.Context, clientID string) (models.ColorScheme, error) {
	if clientID == "" {
		return "", apperrors.NewValidationError("client id cannot be empty", nil)
	}
	pref, err := t.store.GetPreference(ctx, clientID)
	if err != nil {
		return "", apperrors.NewInternalError("failed to read preference", err)
	}
	if pref == nil || !pref.ColorScheme.Valid() {
		return models.ColorSchemeAutomatic, nil
	}
	return pref.ColorScheme, nil
}

// SetColorScheme stores scheme for the client.
func (t *Themes) SetColorScheme(ctx context.Context, clientID string, scheme models.ColorScheme) (*models.Preference, error) {
	if clientID == "" {
		return nil, apperrors.NewValidationError("client id cannot be empty", nil)
	}
	if !scheme.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown color scheme %q", scheme), nil)
	}
	pref := &models.Preference{ClientID: clientID, ColorScheme: scheme}
	if err := t.store.SavePreference(ctx, pref); err != nil {
		return nil, apperrors.NewInternalError("failed to save preference", err)
	}
	return pref, nil
}
