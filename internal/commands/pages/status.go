package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const setPageStatusMessageType = "landing.pages.set_status"

// SetPageStatusCommand moves a page between draft, published and archived.
type SetPageStatusCommand struct {
	PageID uuid.UUID `json:"page_id"`
	Status string    `json:"status"`
}

func (SetPageStatusCommand) Type() string { return setPageStatusMessageType }

func (m SetPageStatusCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("landing.pages.set_status.page_id_required", "page_id is required")
	}
	if !knownStatus(m.Status) {
		errs["status"] = validation.NewError("landing.pages.set_status.status_invalid", "status must be one of "+strings.Join(pages.Statuses, ", "))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetPageStatusHandler applies status changes through the page service.
type SetPageStatusHandler struct {
	inner *commands.Handler[SetPageStatusCommand]
}

func NewSetPageStatusHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SetPageStatusCommand]) *SetPageStatusHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	exec := func(ctx context.Context, msg SetPageStatusCommand) error {
		_, err := service.SetStatus(ctx, msg.PageID, strings.TrimSpace(msg.Status))
		return err
	}
	handlerOpts := []commands.HandlerOption[SetPageStatusCommand]{
		commands.WithLogger[SetPageStatusCommand](logger),
		commands.WithOperation[SetPageStatusCommand]("pages.set_status"),
		commands.WithMessageFields(func(msg SetPageStatusCommand) map[string]any {
			return map[string]any{"page_id": msg.PageID.String(), "status": msg.Status}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SetPageStatusCommand](logger)),
	}
	return &SetPageStatusHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *SetPageStatusHandler) Execute(ctx context.Context, msg SetPageStatusCommand) error {
	return h.inner.Execute(ctx, msg)
}

func knownStatus(status string) bool {
	status = strings.TrimSpace(status)
	for _, candidate := range pages.Statuses {
		if candidate == status {
			return true
		}
	}
	return false
}
