package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	brewMethods = []string{
		"v60", "chemex", "aeropress", "french_press", "espresso",
		"moka_pot", "kalita", "cold_brew", "siphon", "other",
	}
	roastLevels  = []string{"light", "medium", "dark"}
	beanProcess  = []string{"washed", "natural", "honey", "anaerobic", "other"}
	burrTypes    = []string{"flat", "conical", "blade"}
	validateOnce sync.Once
)

// RegisterValidators adds the domain enum tags to gin's validator
func RegisterValidators() {
	validateOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("brew_method", oneOf(brewMethods))
		_ = v.RegisterValidation("roast_level", oneOf(roastLevels))
		_ = v.RegisterValidation("bean_process", oneOf(beanProcess))
		_ = v.RegisterValidation("burr_type", oneOf(burrTypes))
	})
}

func oneOf(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// fieldName reports fields by their json or form name so that messages
// match what the client sent
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
