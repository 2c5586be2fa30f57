// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

// Package validation checks path parameters and dataset records with
// go-playground/validator. Two custom tags are registered:
//
//	year4   exactly four ASCII digits
//	region  NA, EU, JP, OTHER or GLOBAL in any case
//
// Field names in messages come from json tags, so a Year field tagged
// json:"year" that fails year4 reports "year must be a 4-digit number".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/vgtrends/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	yearPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// ValidationError is one failed field.
type ValidationError struct {
	field   string
	tag     string
	value   interface{}
	message string
}

func (e *ValidationError) Field() string      { return e.field }
func (e *ValidationError) Tag() string        { return e.tag }
func (e *ValidationError) Value() interface{} { return e.value }
func (e *ValidationError) Error() string      { return e.message }

// RequestValidationError collects every failed field of one struct. Its
// message joins the field messages with "; ".
type RequestValidationError struct {
	errors []ValidationError
}

func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	for i := range ve.errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ve.errors[i].message)
	}
	return b.String()
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)

		custom := map[string]validator.Func{
			"year4": func(fl validator.FieldLevel) bool {
				return yearPattern.MatchString(fl.Field().String())
			},
			"region": func(fl validator.FieldLevel) bool {
				_, err := models.ParseRegion(fl.Field().String())
				return err == nil
			},
		}
		for tag, fn := range custom {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("validation: register %s: %v", tag, err))
			}
		}
		validate = v
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// ValidateStruct returns nil when s passes every rule.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return &RequestValidationError{errors: []ValidationError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			value:   fe.Value(),
			message: message(fe),
		})
	}
	return &RequestValidationError{errors: out}
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "year4":
		return f + " must be a 4-digit number"
	case "region":
		return f + " must be one of NA, EU, JP, OTHER, GLOBAL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", f, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", f, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", f, fe.Tag())
}
