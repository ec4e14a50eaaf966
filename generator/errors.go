package generator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GenerationFailedMessage is the only failure text users ever see.
const GenerationFailedMessage = "Failed to generate content. Please check your API key and try again."

// ValidationError reports a request that must not be submitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// GenerationError wraps a provider failure. Message is user-facing; Cause is for logs only.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// UserMessage returns the text to show for err. Anything that is not a
// GenerationError still maps to the generic failure message.
func UserMessage(err error) string {
	var ge *GenerationError
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	return GenerationFailedMessage
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// enum fields implement Valid(); an empty value is never a member.
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && e.Valid()
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the submission invariants: a topic is present and every
// enum field holds a known value.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := "is required"
		if fe.Tag() == "enum" {
			msg = fmt.Sprintf("unknown value %q", fe.Value())
		}
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	return err
}
