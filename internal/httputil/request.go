package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data and runs the binding
// validations.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			texts := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				texts = append(texts, ValidationErrorToText(e))
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(texts, ", "))
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s", ErrInvalidBody, err.Error())
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindPatch binds the body of a partial update to data. All fields of
// data are pointers, nil meaning "unchanged". A field that is explicitly
// set to null can not be told apart from a missing one after binding, so
// it is rejected.
func BindPatch(c *gin.Context, data any) error {
	fields, err := GetBodyFields(c, data)
	if err != nil {
		return err
	}

	err = BindData(c, data)
	if err != nil {
		return err
	}

	val := reflect.Indirect(reflect.ValueOf(data))
	var texts []string
	for _, field := range fields {
		v := val.FieldByName(field)
		if v.Kind() == reflect.Pointer && v.IsNil() {
			texts = append(texts, fmt.Sprintf("%s must not be null", field))
		}
	}

	if len(texts) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(texts, ", "))
	}

	return nil
}
