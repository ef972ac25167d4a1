package attr

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// options records. Field names in errors follow the json tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// ValidateOptions checks the validate tags of an options record. A failing
// required tag is a MissingRequiredField error naming the field; any other
// failing tag is a ConstraintViolation.
func ValidateOptions(owner string, opts any) error {
	err := validatorInstance().Struct(opts)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return fluenterrors.TypeMismatch(owner, opts, "options struct")
	}
	fe := ves[0]
	field := fieldPath(fe)
	if fe.Tag() == "required" {
		return fluenterrors.MissingField(owner, field)
	}
	constraint := fe.Tag()
	if fe.Param() != "" {
		constraint += "=" + fe.Param()
	}
	return fluenterrors.Constraint(field, constraint, fe.Value())
}

// fieldPath drops the struct name from the namespace: RadioOptions.group -> group.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
