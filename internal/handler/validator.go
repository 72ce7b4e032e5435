package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Trans translates validator errors into user-facing messages.
var Trans ut.Translator

// InitTrans wires the binding validator to report field names from json
// tags and installs the English translations. Must run before the router
// serves requests.
func InitTrans() (err error) {
	// binding.Validator can be nil until the first bind in gin v1.9+.
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Report the json field name, not the Go struct field name.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enT := en.New()
		uni := ut.New(enT, enT)
		var ok bool
		Trans, ok = uni.GetTranslator("en")
		if !ok {
			return fmt.Errorf("uni.GetTranslator(en) failed")
		}
		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	return
}

// removeTopStruct strips the struct name prefix ("CreateContactRequest.")
// from translated field errors.
func removeTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string)
	for field, msg := range fields {
		res[field[strings.Index(field, ".")+1:]] = msg
	}
	return res
}

type defaultValidator struct {
	validator *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	return v.validator.Struct(obj)
}

func (v *defaultValidator) Engine() interface{} {
	return v.validator
}
