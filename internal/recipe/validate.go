package recipe

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their yaml names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("regexflags", validFlags); err != nil {
		panic(err)
	}
	return v
}

// validFlags accepts any subset of "gimuy" with no letter repeated.
func validFlags(fl validator.FieldLevel) bool {
	seen := map[rune]bool{}
	for _, r := range fl.Field().String() {
		if !strings.ContainsRune("gimuy", r) || seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

// Validate checks r against its structural rules. It does not apply the
// steps; operations and arguments are checked by Build.
func Validate(r *Recipe) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	problems := make([]Problem, len(errs))
	for i, fe := range errs {
		problems[i] = Problem{Field: field(fe), Message: message(fe)}
	}
	return &ValidationError{Problems: problems}
}

// field strips the root struct name from the namespace,
// e.g. Recipe.steps[0].op becomes steps[0].op.
func field(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "at least " + fe.Param() + " entry is required"
	case "regexflags":
		return fmt.Sprintf("invalid flags %q, want a subset of gimuy", fe.Value())
	default:
		return "failed rule " + fe.Tag()
	}
}
