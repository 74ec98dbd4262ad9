package helper

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// optional leading "+", then 7–14 digits (≤15 chars overall)
var phoneRe = regexp.MustCompile(`^\+?[0-9]{7,14}$`)

// NewValidator returns a validator with the project's custom rules registered.
// It panics if a rule cannot be registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	// maxbytes=N limits the UTF-8 length of a string, unlike max which counts runes.
	mustRegister(v, "maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("maxbytes: bad param %q", fl.Param()))
		}
		return len(fl.Field().String()) <= n
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}
