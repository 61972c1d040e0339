// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/game-wheel/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v against its validate tags and reports the first
// failing field as an InvalidArgument error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	return fieldError(err)
}

// ValidateGameList checks that list names are non-empty and that every list
// holds unique, non-empty items.
func ValidateGameList(g GameList) error {
	if g == nil {
		return apperr.InvalidArgument("game list document is missing")
	}
	for name, items := range g {
		if strings.TrimSpace(name) == "" {
			return apperr.InvalidArgument("list name is required")
		}
		if err := validate.Var(items, "unique,dive,required"); err != nil {
			return apperr.InvalidArgument(fmt.Sprintf("list %q must contain unique, non-empty names", name))
		}
	}
	return nil
}

func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.New(apperr.ErrInvalidArgument, "invalid input", err)
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "min":
		return apperr.InvalidArgument(field + " is required")
	case "oneof":
		return apperr.InvalidArgument(fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
	default:
		return apperr.InvalidArgument(fmt.Sprintf("%s is invalid", field))
	}
}
