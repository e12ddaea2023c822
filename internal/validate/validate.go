package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotelreserve/internal/domain"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

type FieldErrors []FieldError

func (fs FieldErrors) Error() string {
	msgs := make([]string, 0, len(fs))
	for _, f := range fs {
		msgs = append(msgs, f.Error())
	}
	return strings.Join(msgs, "; ")
}

// CustomerInput carries the caller-supplied fields of a customer create or
// modify. Values are expected to be trimmed before checking.
type CustomerInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contact_email"`
}

type HotelInput struct {
	Name       string `validate:"required"`
	City       string `validate:"required"`
	TotalRooms int    `validate:"gt=0"`
}

type Inputs struct {
	validate *validator.Validate
}

func New() *Inputs {
	v := validator.New()
	// contact_email is deliberately looser than the built-in "email" rule:
	// the stored data only guarantees the address contains "@" and ".".
	if err := v.RegisterValidation("contact_email", contactEmail); err != nil {
		panic(err)
	}
	return &Inputs{validate: v}
}

// Check validates in and reports rule breaks as domain.ErrValidation.
func (i *Inputs) Check(in any) error {
	err := i.validate.Struct(in)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(FieldErrors, 0, len(ves))
	for _, ve := range ves {
		out = append(out, FieldError{Field: ve.Field(), Message: message(ve)})
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, out.Error())
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "must not be empty"
	case "contact_email":
		return "must contain '@' and '.'"
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	default:
		return fmt.Sprintf("failed rule %q", ve.Tag())
	}
}

func contactEmail(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}
