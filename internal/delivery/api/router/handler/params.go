package handler

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// int64Param reads a positive numeric path parameter.
func int64Param(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", name)
	}
	if id <= 0 {
		return 0, errors.Errorf("invalid %s", name)
	}

	return id, nil
}

// emailParam reads an email path parameter, which clients may percent-encode.
func emailParam(c echo.Context) (string, error) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return "", errors.Wrap(err, "invalid email")
	}

	return email, nil
}
