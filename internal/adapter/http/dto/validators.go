package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var fileRefRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\./]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("money", validateMoney)
		_ = v.RegisterValidation("file_ref", validateFileRef)
	}
}

// validateMoney accepts a plain decimal string such as "12.50".
// Sign is left to the ledger so it can answer with its own error code.
func validateMoney(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// validateFileRef allows storage keys made of alphanumerics, dash, underscore,
// dot and slash, without parent-directory segments.
func validateFileRef(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" || strings.Contains(raw, "..") || strings.HasPrefix(raw, "/") {
		return false
	}
	return fileRefRe.MatchString(raw)
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer, descending into slices of structs.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := sanitize(elem.String())
				elem.SetString(s)
			}
		case reflect.Slice:
			for j := 0; j < f.Len(); j++ {
				if item := f.Index(j); item.Kind() == reflect.Struct {
					sanitizeFields(item)
				}
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
