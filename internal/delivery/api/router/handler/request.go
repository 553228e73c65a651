// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"launchpad/internal/delivery/api/middleware"
	domainerrors "launchpad/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bind decodes the request into dst and runs the registered validator.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}
	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidInput.WithMessage("Invalid " + name)
	}

	return id, nil
}

// caller returns the authenticated user's id.
func caller(c echo.Context) (int64, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// callerAndID resolves the caller and the :id path parameter.
func callerAndID(c echo.Context) (userID, id int64, err error) {
	if userID, err = caller(c); err != nil {
		return 0, 0, err
	}
	if id, err = pathID(c, "id"); err != nil {
		return 0, 0, err
	}

	return userID, id, nil
}
