package sectionscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const toggleSectionMessageType = "landing.sections.toggle"

// ToggleSectionCommand flips the active flag of a stored section row.
type ToggleSectionCommand struct {
	SectionID uuid.UUID `json:"section_id"`
}

func (ToggleSectionCommand) Type() string { return toggleSectionMessageType }

func (m ToggleSectionCommand) Validate() error {
	if m.SectionID == uuid.Nil {
		return validation.Errors{
			"section_id": validation.NewError("landing.sections.toggle.section_id_required", "section_id is required"),
		}
	}
	return nil
}

type ToggleSectionHandler struct {
	inner *commands.Handler[ToggleSectionCommand]
}

func NewToggleSectionHandler(service sections.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ToggleSectionCommand]) *ToggleSectionHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	exec := func(ctx context.Context, msg ToggleSectionCommand) error {
		_, err := service.ToggleStatus(ctx, msg.SectionID)
		return err
	}
	handlerOpts := []commands.HandlerOption[ToggleSectionCommand]{
		commands.WithLogger[ToggleSectionCommand](logger),
		commands.WithOperation[ToggleSectionCommand]("sections.toggle"),
		commands.WithMessageFields(func(msg ToggleSectionCommand) map[string]any {
			return map[string]any{"section_id": msg.SectionID.String()}
		}),
	}
	return &ToggleSectionHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *ToggleSectionHandler) Execute(ctx context.Context, msg ToggleSectionCommand) error {
	return h.inner.Execute(ctx, msg)
}
