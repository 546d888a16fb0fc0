package domains

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Domain maps a host name to a published landing page.
type Domain struct {
	bun.BaseModel `bun:"table:custom_domains,alias:cd" json:"-"`

	ID            uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Domain        string    `bun:"domain,notnull,unique" json:"domain"`
	LandingPageID uuid.UUID `bun:"landing_page_id,notnull,type:uuid" json:"landing_page_id"`
	IsActive      bool      `bun:"is_active,notnull" json:"is_active"`
	Notes         string    `bun:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

var (
	ErrDomainRequired   = errors.New("domains: domain id required")
	ErrInvalidDomain    = errors.New("domains: invalid domain")
	ErrDomainExists     = errors.New("domains: domain already exists")
	ErrPageNotPublished = errors.New("domains: landing page must be published before assigning a custom domain")
)

// NotFoundError is returned when a domain or its page cannot be found.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func cloneDomain(src *Domain) *Domain {
	if src == nil {
		return nil
	}
	out := *src
	return &out
}
