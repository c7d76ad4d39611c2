package request

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ymd accepts calendar dates in YYYY-MM-DD. Bound fields still go through
// time.Parse in ToInput; this only moves the obvious rejections to binding.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(dateLayout, fl.Field().String())
			return err == nil
		})
	}
}
