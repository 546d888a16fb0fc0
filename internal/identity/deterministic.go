package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity kind so different records never collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SectionTypeUUID is the seeded id of a catalog entry.
func SectionTypeUUID(typeKey string) uuid.UUID {
	return UUID("go-landing:section_type:" + strings.ToLower(strings.TrimSpace(typeKey)))
}

func DomainUUID(domain string) uuid.UUID {
	return UUID("go-landing:domain:" + strings.ToLower(strings.TrimSpace(domain)))
}
