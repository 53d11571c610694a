package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"amina@school.test", true},
		{"a.b+tag@sub.domain.org", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
		{"@school.test", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
		})
	}
}
