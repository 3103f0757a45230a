package util

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/apperror"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ParseAndValidate binds the JSON body into dst and validates it. Any
// failure is a validation error carrying a per-field message map; nothing is
// written before it is returned.
func ParseAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperror.Validation("malformed request body", nil)
	}
	if err := Validator().Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		fields := map[string]string{}
		if ok := asValidationErrors(err, &verrs); ok {
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = "failed on " + fe.Tag()
			}
		}
		return apperror.Validation("request validation failed", fields)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
