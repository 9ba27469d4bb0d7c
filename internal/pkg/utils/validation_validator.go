package utils

import (
	"reflect"
	"regexp"
	"sirsak-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	gridSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[03]0$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("grid_slot", validateGridSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateGridSlot(fl validator.FieldLevel) bool {
	return gridSlotPattern.MatchString(fl.Field().String())
}
