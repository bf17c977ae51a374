package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hance08/fakturoid-mcp/internal/config"
	"github.com/hance08/fakturoid-mcp/internal/validation"
)

// PromptCredentials asks for the account and OAuth credentials, starting
// from current. An empty secret keeps the current one.
func PromptCredentials(current config.FakturoidConfig) (config.FakturoidConfig, error) {
	result := current
	var secret string

	secretCheck := validation.ValidateRequired("client secret")
	if current.ClientSecret != "" {
		secretCheck = func(string) error { return nil }
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account slug").
				Description("The part after app.fakturoid.cz/ in your account URL").
				Value(&result.Slug).
				Validate(validation.ValidateSlug),
			huh.NewInput().
				Title("Account email").
				Description("Used in the User-Agent header Fakturoid requires").
				Value(&result.Email).
				Validate(validation.ValidateEmail),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Client ID").
				Description("Settings > User account > API in Fakturoid").
				Value(&result.ClientID).
				Validate(validation.ValidateRequired("client id")),
			huh.NewInput().
				Title("Client secret").
				Description(secretHint(current.ClientSecret)).
				EchoMode(huh.EchoModePassword).
				Value(&secret).
				Validate(secretCheck),
		),
	)
	if err := form.Run(); err != nil {
		return current, err
	}

	if secret != "" {
		result.ClientSecret = secret
	}
	result.Slug = strings.TrimSpace(result.Slug)
	result.Email = strings.TrimSpace(result.Email)
	result.ClientID = strings.TrimSpace(result.ClientID)
	if result.Email != "" {
		result.UserAgent = "FakturoidMCP (" + result.Email + ")"
	}
	return result, nil
}

func secretHint(current string) string {
	if current == "" {
		return "Shown once when the API client is created"
	}
	return "Leave empty to keep the current secret"
}
