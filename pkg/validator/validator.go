// Package validator implements the form validation engine. Both rule sets are
// pure: they map a partial form record to a field-name → error-message map.
// An empty map means the record is valid.
package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

var (
	// RFC-lite on purpose: local@domain.tld with no whitespace or extra @.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// FormValidator validates the recruitment and feedback forms.
type FormValidator struct {
	v *validatorv10.Validate
}

func New() *FormValidator {
	v := validatorv10.New(validatorv10.WithRequiredStructEnabled())

	// Error maps are keyed by the wire field names, not Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// required passes for whitespace-only strings; form text fields must be
	// non-empty after trimming.
	must(v.RegisterValidation("notblank", func(fl validatorv10.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("rfclite", func(fl validatorv10.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("phone10", func(fl validatorv10.FieldLevel) bool {
		digits := nonDigit.ReplaceAllString(fl.Field().String(), "")
		return len(digits) == 10
	}))

	return &FormValidator{v: v}
}

var recruitmentMessages = map[string]string{
	"name.notblank":       "Name is required",
	"email.notblank":      "Email is required",
	"email.rfclite":       "Invalid email format",
	"phone.notblank":      "Phone is required",
	"phone.phone10":       "Invalid phone number",
	"year.required":       "Year is required",
	"branch.required":     "Branch is required",
	"roleId.required":     "Role selection is required",
	"experience.notblank": "Experience is required",
	"experience.min":      "Experience must be at least 50 characters",
}

var feedbackMessages = map[string]string{
	"name.notblank":     "Name is required",
	"email.notblank":    "Email is required",
	"email.rfclite":     "Invalid email format",
	"rating.required":   "Valid rating is required",
	"rating.min":        "Valid rating is required",
	"rating.max":        "Valid rating is required",
	"category.required": "Category is required",
	"message.notblank":  "Message is required",
	"message.min":       "Message must be at least 10 characters",
}

// Recruitment validates a recruitment application. Fields are checked
// independently; within one field the first failing rule wins, so a blank
// email reports "Email is required" rather than a format error.
func (f *FormValidator) Recruitment(in model.RecruitmentInput) map[string]string {
	return f.collect(in, recruitmentMessages)
}

// Feedback validates a feedback entry.
func (f *FormValidator) Feedback(in model.FeedbackInput) map[string]string {
	return f.collect(in, feedbackMessages)
}

func (f *FormValidator) collect(in interface{}, messages map[string]string) map[string]string {
	result := make(map[string]string)

	err := f.v.Struct(in)
	if err == nil {
		return result
	}

	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct-level failures cannot come from well-formed inputs.
		result["submit"] = "Invalid form data"
		return result
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := result[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			result[field] = msg
		} else {
			result[field] = field + " is invalid"
		}
	}

	return result
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
