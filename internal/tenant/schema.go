package tenant

import (
	"fmt"
	"regexp"

	apperrors "kubera-backend/internal/errors"
)

const (
	// PublicSchema holds shared tables. It is never a valid tenant target.
	PublicSchema = "public"
	// SchemaPrefix is prepended to a subdomain to form the tenant schema name.
	SchemaPrefix = "tenant_"

	maxIdentifierLength = 63
)

var (
	schemaNamePattern = regexp.MustCompile(`^tenant_[a-zA-Z0-9][a-zA-Z0-9_]*$`)
	subdomainPattern  = regexp.MustCompile(`^[a-z0-9]+$`)
)

// ValidateSchemaName rejects anything that is not a well-formed tenant schema
// identifier. Names are never sanitized, only accepted or refused.
func ValidateSchemaName(name string) error {
	if name == PublicSchema {
		return fmt.Errorf("%w: %q is the shared schema", apperrors.ErrInvalidSchemaName, name)
	}
	if len(name) > maxIdentifierLength || !schemaNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidSchemaName, name)
	}
	return nil
}

// ValidateSubdomain checks a subdomain can be used as a tenant routing label.
func ValidateSubdomain(subdomain string) error {
	if subdomain == Public || reservedLabels[subdomain] || subdomain == loopbackHost {
		return apperrors.NewValidationError("subdomain", "is reserved")
	}
	if !subdomainPattern.MatchString(subdomain) {
		return apperrors.NewValidationError("subdomain", "must contain only lowercase letters and digits")
	}
	if len(SchemaPrefix)+len(subdomain) > maxIdentifierLength {
		return apperrors.NewValidationError("subdomain", "is too long")
	}
	return nil
}

// SchemaNameFor returns the schema owned by the tenant with the given subdomain.
func SchemaNameFor(subdomain string) string {
	return SchemaPrefix + subdomain
}
