package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field path to its failure messages.
type FieldErrors map[string][]string

// Add appends a message for field
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msgs := range fe {
		parts = append(parts, field+": "+strings.Join(msgs, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Normalizer is implemented by schemas that trim input or fill defaults
// before validation runs.
type Normalizer interface {
	Normalize()
}

// Validator checks schema structs declared with `validate` tags. Field
// paths in errors use the json tag names; messages use the `label` tag.
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

// New creates a validator with the password and fullname rules registered
func New() *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		messages: make(map[string]string),
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Built-in rules cannot collide with validator tags.
	_ = v.RegisterRule("password", PasswordRule, PasswordMessage)
	_ = v.RegisterRule("fullname", FullnameRule, FullnameMessage)

	return v
}

// RegisterRule exposes rule as a validate tag that fails with message.
func (v *Validator) RegisterRule(tag string, rule Rule, message string) error {
	err := v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return rule(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("register rule %q: %w", tag, err)
	}
	v.messages[tag] = message
	return nil
}

// Struct validates s and returns nil when it passes.
func (v *Validator) Struct(s any) FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return FieldErrors{"body": {"Invalid payload"}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"body": {err.Error()}}
	}

	root := reflect.TypeOf(s)
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), v.message(fe, labelFor(root, fe.StructNamespace())))
	}
	return out
}

// Bind decodes raw JSON into T, normalizes it and validates it. Unknown
// fields are dropped. An empty body is treated as an empty object. Fields
// with the wrong JSON type are reported together with every constraint the
// rest of the payload fails.
func Bind[T any](v *Validator, raw []byte) (*T, FieldErrors) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	out := new(T)
	var decodeErrs FieldErrors
	if err := json.Unmarshal(raw, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, FieldErrors{"body": {"Invalid JSON body"}}
		}
		if typeErr.Field == "" {
			// the body itself is not an object
			return nil, typeErrorFields(FieldErrors{}, typeErr)
		}
		// Unmarshal keeps decoding past a type error, so out holds every
		// field that did match.
		decodeErrs = typeErrors[T](raw, typeErr)
	}

	if n, ok := any(out).(Normalizer); ok {
		n.Normalize()
	}

	errs := v.Struct(out)
	if decodeErrs == nil {
		if errs != nil {
			return nil, errs
		}
		return out, nil
	}

	for field, msgs := range errs {
		if !coveredBy(decodeErrs, field) {
			decodeErrs[field] = append(decodeErrs[field], msgs...)
		}
	}
	return nil, decodeErrs
}

// typeErrors decodes each top-level key of raw on its own so every
// mismatched field is reported, not only the first one json stops at.
func typeErrors[T any](raw []byte, first *json.UnmarshalTypeError) FieldErrors {
	out := FieldErrors{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return typeErrorFields(out, first)
	}
	for key, value := range fields {
		single, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			continue
		}
		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal(single, new(T)); errors.As(err, &typeErr) {
			typeErrorFields(out, typeErr)
		}
	}
	if len(out) == 0 {
		typeErrorFields(out, first)
	}
	return out
}

func typeErrorFields(fe FieldErrors, typeErr *json.UnmarshalTypeError) FieldErrors {
	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	fe.Add(field, fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value))
	return fe
}

// coveredBy reports whether field, or an object containing it, already
// failed to decode. Its zero value would only produce follow-up errors.
func coveredBy(decodeErrs FieldErrors, field string) bool {
	for bad := range decodeErrs {
		if field == bad || strings.HasPrefix(field, bad+".") {
			return true
		}
	}
	return false
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func (v *Validator) message(fe validator.FieldError, label string) string {
	if msg, ok := v.messages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return capitalize(label) + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", capitalize(label), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", capitalize(label), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", capitalize(label), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", capitalize(label), fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return capitalize(label) + " must be a positive number"
		}
		return fmt.Sprintf("%s must be greater than %s", capitalize(label), fe.Param())
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid URL"
	case "uuid", "uuid4":
		return "Invalid " + label
	case "oneof":
		options := strings.Fields(fe.Param())
		for i, o := range options {
			options[i] = "'" + o + "'"
		}
		if len(options) == 2 {
			return fmt.Sprintf("%s must be either %s or %s", capitalize(label), options[0], options[1])
		}
		return fmt.Sprintf("%s must be one of %s", capitalize(label), strings.Join(options, ", "))
	default:
		return capitalize(label) + " is invalid"
	}
}

// fieldPath drops the schema type name from a namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// labelFor walks root along a Go-name namespace such as
// "DetailsSchema.Additional.Security" and returns the field's label tag.
func labelFor(root reflect.Type, structNamespace string) string {
	segments := strings.Split(structNamespace, ".")
	if len(segments) < 2 {
		return structNamespace
	}

	t := root
	var field reflect.StructField
	for _, seg := range segments[1:] {
		if i := strings.IndexByte(seg, '['); i >= 0 {
			seg = seg[:i]
		}
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			break
		}
		f, ok := t.FieldByName(seg)
		if !ok {
			break
		}
		field = f
		t = f.Type
	}

	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	return segments[len(segments)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
