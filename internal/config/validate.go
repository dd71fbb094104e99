package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/madhermit/pick/internal/option"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks doc against its struct rules. Duplicate option values are
// named individually.
func Validate(doc *Document) error {
	err := validatorInstance().Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate options document: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(doc, fe))
	}
	return &ValidationError{Problems: problems}
}

func describe(doc *Document, fe validator.FieldError) string {
	switch fe.Tag() {
	case "unique":
		return fmt.Sprintf("options: duplicate values %q", option.Duplicates(doc.Options))
	case "required":
		return fmt.Sprintf("%s: required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s: %q must be one of [%s]", fe.Namespace(), fe.Value(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s: must be >= %s", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag())
	}
}
