package di

import (
	"errors"
	"fmt"

	orderscmd "github.com/goliatone/go-landing/internal/commands/orders"
	pagescmd "github.com/goliatone/go-landing/internal/commands/pages"
	sectionscmd "github.com/goliatone/go-landing/internal/commands/sections"

	"github.com/goliatone/go-command/dispatcher"
)

// CommandRegistry records command handlers so hosts can expose them via a CLI.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription tears down a dispatcher subscription.
type CommandSubscription interface {
	Unsubscribe()
}

type RegistrationOptions struct {
	Registry   CommandRegistry
	Dispatcher CommandDispatcher
}

// RegistrationResult lists the registered handlers and any subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// Unsubscribe tears down every dispatcher subscription.
func (r *RegistrationResult) Unsubscribe() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		sub.Unsubscribe()
	}
	r.Subscriptions = nil
}

// RegisterCommands hands every admin command handler to the configured
// registry and dispatcher. A nil dispatcher falls back to the global
// go-command dispatcher.
func (c *Container) RegisterCommands(opts RegistrationOptions) (*RegistrationResult, error) {
	if opts.Dispatcher == nil {
		opts.Dispatcher = GlobalDispatcher{}
	}
	result := &RegistrationResult{}
	var errs error
	for _, handler := range c.handlers.all() {
		result.Handlers = append(result.Handlers, handler)
		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}
		sub, err := opts.Dispatcher.RegisterCommand(handler)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if sub != nil {
			result.Subscriptions = append(result.Subscriptions, sub)
		}
	}
	return result, errs
}

func (h Handlers) all() []any {
	return []any{h.DuplicatePage, h.SetPageStatus, h.ToggleSection, h.ReorderSections, h.UpdateOrderStatus}
}

// GlobalDispatcher subscribes handlers to the package level go-command
// dispatcher.
type GlobalDispatcher struct{}

func (GlobalDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	switch h := handler.(type) {
	case *pagescmd.DuplicatePageHandler:
		return dispatcher.SubscribeCommand(h), nil
	case *pagescmd.SetPageStatusHandler:
		return dispatcher.SubscribeCommand(h), nil
	case *sectionscmd.ToggleSectionHandler:
		return dispatcher.SubscribeCommand(h), nil
	case *sectionscmd.ReorderSectionsHandler:
		return dispatcher.SubscribeCommand(h), nil
	case *orderscmd.UpdateOrderStatusHandler:
		return dispatcher.SubscribeCommand(h), nil
	default:
		return nil, fmt.Errorf("di: unsupported command handler %T", handler)
	}
}
