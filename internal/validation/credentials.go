package validation

import (
	"fmt"
	"strings"
)

const maxSlugLen = 64

// ValidateRequired returns a validator that rejects blank input.
func ValidateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s can't be empty", field)
		}
		return nil
	}
}

// ValidateSlug checks an account slug: lowercase letters, digits and
// hyphens, as in app.fakturoid.cz/<slug>.
func ValidateSlug(s string) error {
	slug := strings.TrimSpace(s)
	if slug == "" {
		return fmt.Errorf("account slug can't be empty")
	}
	if strings.Contains(slug, "/") {
		return fmt.Errorf("enter only the slug, not the whole URL")
	}
	if len(slug) > maxSlugLen {
		return fmt.Errorf("account slug too long (max %d characters)", maxSlugLen)
	}
	for _, c := range slug {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("account slug may contain only lowercase letters, digits and '-'")
		}
	}
	return nil
}

// ValidateEmail does a shape check only; Fakturoid accepts any contact
// address in the User-Agent.
func ValidateEmail(s string) error {
	email := strings.TrimSpace(s)
	if email == "" {
		return fmt.Errorf("email can't be empty")
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return fmt.Errorf("'%s' is not an email address", email)
	}
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("'%s' is missing a domain", email)
	}
	return nil
}
