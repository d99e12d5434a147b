package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single violated constraint, addressed by the JSON field
// name as it appeared in the request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var isbnPattern = regexp.MustCompile(`^[0-9-]{10,17}$`)

// validate is the shared engine. Schemas are plain structs with validate
// tags; field names in errors come from the json tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("isbn_format", func(fl validator.FieldLevel) bool {
		return isbnPattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	// not_future passes unparseable values so iso_date stays the single
	// reporter for malformed dates.
	_ = v.RegisterValidation("not_future", func(fl validator.FieldLevel) bool {
		t, err := ParseDate(fl.Field().String())
		if err != nil {
			return true
		}
		return !t.After(time.Now())
	})

	return v
}

// ParseDate accepts an ISO calendar date (YYYY-MM-DD) or an RFC 3339
// timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// NormalizeDate rewrites an accepted date value as RFC 3339 UTC, the storage
// form for publishedDate. The input must already have passed ParseDate.
func NormalizeDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.UTC().Format(time.RFC3339)
}

// checkStruct runs the engine over a populated schema and converts the
// violations. Fields listed in skip already failed coercion and would only
// produce redundant messages here.
func checkStruct(schema any, skip map[string]bool) []FieldError {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "The provided data is not valid"}}
	}

	var out []FieldError
	for _, fe := range verrs {
		field := fe.Field()
		if skip[field] {
			continue
		}
		out = append(out, FieldError{Field: field, Message: message(field, fe.Tag())})
	}
	return out
}

// orderErrors sorts violations into canonical schema field order, keeping
// the relative order of multiple messages for the same field.
func orderErrors(errs []FieldError, order []string) []FieldError {
	rank := make(map[string]int, len(order))
	for i, f := range order {
		rank[f] = i
	}
	sort.SliceStable(errs, func(i, j int) bool {
		ri, ok := rank[errs[i].Field]
		if !ok {
			ri = len(order)
		}
		rj, ok := rank[errs[j].Field]
		if !ok {
			rj = len(order)
		}
		return ri < rj
	})
	return errs
}
