package validation

import "regexp"

// Validation rule patterns shared by the services.
var (
	// EmailPattern matches the account email format accepted at registration.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 6

	// NameMaxLength caps account names, mirroring the column width.
	NameMaxLength = 255

	// PhoneMaxLength caps phone numbers.
	PhoneMaxLength = 20
)

// CompiledPatterns caches compiled regexes.
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}
