package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens the failures
// into one client-facing message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fails []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fails = append(fails, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(fails, ", "))
	}
	return nil
}
