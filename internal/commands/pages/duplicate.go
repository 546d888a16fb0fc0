package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const duplicatePageMessageType = "landing.pages.duplicate"

// DuplicatePageCommand copies a page into a new draft.
type DuplicatePageCommand struct {
	PageID uuid.UUID `json:"page_id"`
}

func (DuplicatePageCommand) Type() string { return duplicatePageMessageType }

func (m DuplicatePageCommand) Validate() error {
	if m.PageID == uuid.Nil {
		return validation.Errors{
			"page_id": validation.NewError("landing.pages.duplicate.page_id_required", "page_id is required"),
		}
	}
	return nil
}

// DuplicatePageHandler runs DuplicatePageCommand against the page service.
// OnDuplicated, when set, receives the created copy.
type DuplicatePageHandler struct {
	inner        *commands.Handler[DuplicatePageCommand]
	OnDuplicated func(*pages.Page)
}

func NewDuplicatePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DuplicatePageCommand]) *DuplicatePageHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	h := &DuplicatePageHandler{}

	exec := func(ctx context.Context, msg DuplicatePageCommand) error {
		dup, err := service.Duplicate(ctx, msg.PageID)
		if err != nil {
			return err
		}
		if h.OnDuplicated != nil {
			h.OnDuplicated(dup)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[DuplicatePageCommand]{
		commands.WithLogger[DuplicatePageCommand](logger),
		commands.WithOperation[DuplicatePageCommand]("pages.duplicate"),
		commands.WithMessageFields(func(msg DuplicatePageCommand) map[string]any {
			return map[string]any{"page_id": msg.PageID.String()}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[DuplicatePageCommand](logger)),
	}
	h.inner = commands.NewHandler(exec, append(handlerOpts, opts...)...)
	return h
}

func (h *DuplicatePageHandler) Execute(ctx context.Context, msg DuplicatePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
