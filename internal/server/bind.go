package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"seqstats/internal/perr"
)

type validatorSvc struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *validatorSvc
)

// validation returns the validator singleton with english messages keyed by
// json field names.
func validation() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "max", "{0} must be at most {1}")
		registerShort(v, trans, "gte", "{0} must be {1} or greater")

		vSvc = &validatorSvc{v: v, trans: trans}
	})
	return vSvc
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// parseJSON decodes one JSON value of type T from r (at most maxBytes,
// unknown fields rejected), then validates it. Failures carry perr codes:
// CodeTooLarge past the limit, CodeJSON for malformed bodies and
// CodeValidation for rule violations.
func parseJSON[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) (T, error) {
	var zero T
	defer r.Body.Close()

	var body io.Reader = r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if tooLarge(err) {
			return zero, perr.Newf(perr.CodeTooLarge, "request body too large (limit %d bytes)", maxBytes)
		}
		if errors.Is(err, io.EOF) {
			return zero, perr.New(perr.CodeJSON, "empty body")
		}
		return zero, perr.Newf(perr.CodeJSON, "invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.New(perr.CodeJSON, "unexpected trailing data")
	}
	// whitespace past the value is fine, but not past the limit
	if maxBytes > 0 {
		if _, err := io.Copy(io.Discard, body); tooLarge(err) {
			return zero, perr.Newf(perr.CodeTooLarge, "request body too large (limit %d bytes)", maxBytes)
		}
	}

	if err := validation().v.Struct(dst); err != nil {
		field, msg := validationFieldAndMessage(err)
		return zero, perr.WithField(perr.New(perr.CodeValidation, msg), field)
	}
	return dst, nil
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// validationFieldAndMessage returns the first failing field and its
// translated message.
func validationFieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(validation().trans)
	}
	return "", err.Error()
}
