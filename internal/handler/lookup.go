package handler

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	kindBoard = "Board"
	kindCard  = "Card"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// lookup resolves the :id path parameter to an entity of the given kind.
// A malformed id is a 400 and a missing row is a 404.
func lookup[T any](c *gin.Context, kind string, get func(context.Context, uint) (*T, error), notFound error) (*T, error) {
	raw := c.Param("id")
	id, err := parseID(raw)
	if err != nil {
		return nil, errInvalidIdentifier(kind, raw)
	}

	entity, err := get(c.Request.Context(), id)
	if errors.Is(err, notFound) {
		return nil, errNotFound(kind, id)
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

var registerFieldNames sync.Once

// useJSONFieldNames makes validation errors report json names instead of Go field names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON decodes the request body into req. Fields tagged binding:"required"
// that are absent are reported together in one MissingFields error.
func bindJSON(c *gin.Context, req any) error {
	registerFieldNames.Do(useJSONFieldNames)

	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		missing := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() == "required" {
				missing = append(missing, fieldErr.Field())
			}
		}
		if len(missing) > 0 {
			return errMissingFields(missing)
		}
	}
	return errInvalidBody
}

type textField struct {
	name  string
	value *string
}

// requireText fails when any of the present fields is blank.
func requireText(fields ...textField) error {
	var blank []string
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			blank = append(blank, f.name)
		}
	}
	if len(blank) > 0 {
		return errMissingFields(blank)
	}
	return nil
}
