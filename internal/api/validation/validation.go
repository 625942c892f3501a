package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct validates struct fields and uses JSON tag names for error keys.
func ValidateStruct(s interface{}) map[string][]string {
	errors := make(map[string][]string)

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			jsonPath := jsonFieldName(s, err.StructField())
			errors[jsonPath] = append(errors[jsonPath], getErrorMsg(err))
		}
	}

	return errors
}

// jsonFieldName maps a struct field name to its JSON tag, falling back to the
// lowercased field name.
func jsonFieldName(s interface{}, fieldName string) string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	field, found := t.FieldByName(fieldName)
	if !found {
		return strings.ToLower(fieldName)
	}
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return strings.ToLower(fieldName)
	}
	return strings.Split(jsonTag, ",")[0]
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("'%s' field is required.", err.StructField())
	case "url":
		return fmt.Sprintf("'%v' is not a valid URL.", err.Value())
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", err.Param())
	case "max":
		return fmt.Sprintf("Must not exceed %s characters.", err.Param())
	case "oneof":
		return fmt.Sprintf("Invalid value '%v'; must be one of %s.", err.Value(), err.Param())
	default:
		return fmt.Sprintf("Failed validation on '%s' with tag '%s'.", err.StructField(), err.Tag())
	}
}
