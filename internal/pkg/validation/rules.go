package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Indian mobile number, 10 digits starting with 6-9
	PhonePattern = `^[6-9]\d{9}$`

	// MongoDB ObjectID in hex form
	ObjectIDPattern = `^[0-9a-fA-F]{24}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone    *regexp.Regexp
	ObjectID *regexp.Regexp
}{
	Phone:    regexp.MustCompile(PhonePattern),
	ObjectID: regexp.MustCompile(ObjectIDPattern),
}

// IsValidPhone reports whether phone is a valid 10 digit mobile number
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidObjectID reports whether id is a 24 character hex ObjectID
func IsValidObjectID(id string) bool {
	return CompiledPatterns.ObjectID.MatchString(id)
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return IsValidObjectID(fl.Field().String())
}

// jsonFieldName reports fields by their JSON name so messages match the payload
func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

var registerOnce sync.Once

// RegisterGinValidators installs the custom rules on gin's binding validator.
// Safe to call more than once.
func RegisterGinValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("inphone", validatePhone)
		_ = v.RegisterValidation("objectid", validateObjectID)
	})
}
