package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations wires custom binding validators into gin's shared
// validator engine. Call once at startup, before routes are served.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// futuredate accepts a YYYY-MM-DD value that is today or later.
	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		d, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
		if err != nil {
			return false
		}
		today := time.Now().Truncate(24 * time.Hour)
		return !d.Before(today)
	})
}
