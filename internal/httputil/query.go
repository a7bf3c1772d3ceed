package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields returns the names of the fields of filter that are set as
// query parameters.
//
// Fields tagged with filterField:"false" are only part of setFields, they
// are processed by explicit logic outside of GetURLFields.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource which are set
// in the request body, including fields explicitly set to null.
//
// This function reads and copies the request body, it must always
// be called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]string, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(body) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	var bodyFields []string
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param, _, _ := strings.Cut(val.Type().Field(i).Tag.Get("json"), ",")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}
	return bodyFields, nil
}
