package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/storefront-auth/internal/domain"
)

func TestSubjectKindOf(t *testing.T) {
	cases := []struct {
		subject string
		want    domain.SubjectKind
	}{
		{"alice@example.com", domain.SubjectKindUser},
		{"bob+tag@shop.example.co.kr", domain.SubjectKindUser},
		{"admin42", domain.SubjectKindAdmin},
		{"root", domain.SubjectKindAdmin},
		{"", domain.SubjectKindAdmin},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SubjectKindOf(tc.subject), "subject %q", tc.subject)
	}
}
