package auth

import (
	"strings"

	"github.com/spec-kit/storefront-auth/internal/domain"
)

// SubjectKindOf classifies a token subject. User subjects are email addresses
// and always contain '@'; admin identifiers never do. This predicate is the
// sole discriminator between the two namespaces, so every call site must go
// through it rather than inspecting the string itself.
func SubjectKindOf(subject string) domain.SubjectKind {
	if strings.Contains(subject, "@") {
		return domain.SubjectKindUser
	}
	return domain.SubjectKindAdmin
}
