package sectionscmd

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const reorderSectionsMessageType = "landing.sections.reorder"

// ReorderSectionsCommand writes new sort orders for a batch of rows.
type ReorderSectionsCommand struct {
	Entries []sections.OrderEntry `json:"sections"`
}

func (ReorderSectionsCommand) Type() string { return reorderSectionsMessageType }

func (m ReorderSectionsCommand) Validate() error {
	if len(m.Entries) == 0 {
		return validation.Errors{
			"sections": validation.NewError("landing.sections.reorder.sections_required", "at least one section is required"),
		}
	}
	errs := validation.Errors{}
	seen := make(map[uuid.UUID]struct{}, len(m.Entries))
	for i, entry := range m.Entries {
		key := fmt.Sprintf("sections.%d", i)
		switch {
		case entry.ID == uuid.Nil:
			errs[key] = validation.NewError("landing.sections.reorder.id_required", "id is required")
		case entry.SortOrder < 0:
			errs[key] = validation.NewError("landing.sections.reorder.sort_order_invalid", "sort_order must not be negative")
		default:
			if _, dup := seen[entry.ID]; dup {
				errs[key] = validation.NewError("landing.sections.reorder.id_duplicate", "id appears more than once")
			}
			seen[entry.ID] = struct{}{}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReorderSectionsHandler struct {
	inner *commands.Handler[ReorderSectionsCommand]
}

func NewReorderSectionsHandler(service sections.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReorderSectionsCommand]) *ReorderSectionsHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	exec := func(ctx context.Context, msg ReorderSectionsCommand) error {
		return service.UpdateOrder(ctx, msg.Entries)
	}
	handlerOpts := []commands.HandlerOption[ReorderSectionsCommand]{
		commands.WithLogger[ReorderSectionsCommand](logger),
		commands.WithOperation[ReorderSectionsCommand]("sections.reorder"),
		commands.WithMessageFields(func(msg ReorderSectionsCommand) map[string]any {
			return map[string]any{"count": len(msg.Entries)}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ReorderSectionsCommand](logger)),
	}
	return &ReorderSectionsHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *ReorderSectionsHandler) Execute(ctx context.Context, msg ReorderSectionsCommand) error {
	return h.inner.Execute(ctx, msg)
}
