package handlers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/abok-cymk/ai-democratizer/domain"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`\d`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("password_complexity", func(fl validator.FieldLevel) bool {
			pw := fl.Field().String()
			return lowerRe.MatchString(pw) && upperRe.MatchString(pw) && digitRe.MatchString(pw)
		})
	}
}

// Per-request catalogues mapping "Field.tag" to the user-facing rule message.
// The validator stops at the first failing tag per field, so each field
// contributes at most one message.

var registerMessages = map[string]string{
	"Email.required":                "Invalid email format",
	"Email.email":                   "Invalid email format",
	"Username.required":             "Username must be at least 3 characters",
	"Username.min":                  "Username must be at least 3 characters",
	"Username.max":                  "Username must be no more than 20 characters",
	"Username.username_chars":       "Username can only contain letters, numbers, and underscores",
	"FirstName.required":            "First name is required",
	"FirstName.max":                 "First name must be no more than 50 characters",
	"LastName.required":             "Last name is required",
	"LastName.max":                  "Last name must be no more than 50 characters",
	"Password.required":             "Password must be at least 8 characters",
	"Password.min":                  "Password must be at least 8 characters",
	"Password.password_complexity":  "Password must contain at least one lowercase letter, one uppercase letter, and one number",
}

var loginMessages = map[string]string{
	"Email.required":    "Invalid email format",
	"Email.email":       "Invalid email format",
	"Password.required": "Password is required",
}

var profileMessages = map[string]string{
	"FirstName.max": "First name is too long",
	"LastName.max":  "Last name is too long",
	"Avatar.max":    "Avatar URL is too long",
	"Location.max":  "Location is too long",
	"Website.max":   "Website is too long",
	"Theme.max":     "Theme is too long",
	"Language.max":  "Language is too long",
}

// translateValidation converts a bind failure into a single classified
// validation error, one message per failed field, joined in struct field
// order. Non-validation failures (malformed JSON, wrong types) collapse to a
// generic message.
func translateValidation(err error, messages map[string]string) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.NewValidation("Invalid request body")
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fe.Field()+" is invalid")
	}
	return domain.NewValidation(strings.Join(msgs, ", "))
}
