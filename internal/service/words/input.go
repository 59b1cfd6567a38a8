package words

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateWordInput holds the parameters for saving a new word.
type CreateWordInput struct {
	Headword string  `json:"headword" validate:"required,max=200"`
	Meaning  string  `json:"meaning" validate:"required,max=2000"`
	Sentence string  `json:"sentence" validate:"required,max=2000"`
	Source   *string `json:"source" validate:"omitempty,max=200"`
}

// normalize trims every field in place and collapses inner whitespace in
// the headword.
func (i *CreateWordInput) normalize() {
	i.Headword = domain.NormalizeHeadword(i.Headword)
	i.Meaning = strings.TrimSpace(i.Meaning)
	i.Sentence = strings.TrimSpace(i.Sentence)
	i.Source = trimOrNil(i.Source)
}

// Validate checks all fields and collects all errors. Surrounding
// whitespace does not count towards required or length rules.
func (i CreateWordInput) Validate() error {
	i.normalize()
	return validateStruct(i)
}

// UpdateWordInput holds the parameters for replacing a saved word's content.
type UpdateWordInput struct {
	Headword string  `json:"headword" validate:"required,max=200"`
	Meaning  string  `json:"meaning" validate:"required,max=2000"`
	Sentence string  `json:"sentence" validate:"required,max=2000"`
	Source   *string `json:"source" validate:"omitempty,max=200"`
}

func (i *UpdateWordInput) normalize() {
	i.Headword = domain.NormalizeHeadword(i.Headword)
	i.Meaning = strings.TrimSpace(i.Meaning)
	i.Sentence = strings.TrimSpace(i.Sentence)
	i.Source = trimOrNil(i.Source)
}

// Validate checks all fields and collects all errors.
func (i UpdateWordInput) Validate() error {
	i.normalize()
	return validateStruct(i)
}

// validateStruct runs the struct tags and converts failures into a
// domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(errs)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "max " + fe.Param() + " characters"
	default:
		return "invalid"
	}
}
