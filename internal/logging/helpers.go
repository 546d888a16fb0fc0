package logging

import (
	"maps"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// WithFields attaches structured fields when the logger implements
// interfaces.FieldsLogger. Loggers without field support are returned as is.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithDocument tags a logger with the page and section being worked on.
// Empty values are skipped.
func WithDocument(logger interfaces.Logger, pageID, instanceID string) interfaces.Logger {
	fields := map[string]any{}
	if pageID != "" {
		fields["page_id"] = pageID
	}
	if instanceID != "" {
		fields["instance_id"] = instanceID
	}
	return WithFields(logger, fields)
}
