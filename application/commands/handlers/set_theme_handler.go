package handlers

import (
	"context"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"go.uber.org/zap"
)

// SetThemeHandler stores the theme preference
type SetThemeHandler struct {
	prefRepo ports.PreferenceRepository
	logger   *zap.Logger
}

// NewSetThemeHandler creates a new set theme handler
func NewSetThemeHandler(prefRepo ports.PreferenceRepository, logger *zap.Logger) *SetThemeHandler {
	return &SetThemeHandler{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// Handle executes the set theme command. Unrecognized tags are stored as
// the default rather than rejected.
func (h *SetThemeHandler) Handle(ctx context.Context, cmd commands.SetThemeCommand) error {
	theme := valueobjects.ParseTheme(cmd.Theme)

	if err := h.prefRepo.Set(ctx, ports.PreferenceKeyTheme, theme.String()); err != nil {
		return err
	}

	h.logger.Info("Theme preference stored", zap.String("theme", theme.String()))
	return nil
}
