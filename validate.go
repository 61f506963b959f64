package gallery

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report member names as they appear in the JSON document
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateDoc checks the struct tags of a decoded document and turns
// validator errors into a readable message.
func validateDoc(doc interface{}) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("%v", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing member %q", fe.Field())
	case "min":
		return fmt.Sprintf("%q must be at least %v", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %v", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q failed %q", fe.Field(), fe.Tag())
	}
}
