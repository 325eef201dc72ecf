package services

import (
	"errors"
	"strings"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError carries the message shown to the client.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(msg string) error {
	return &NotFoundError{Message: msg}
}

// ParamError reports a missing required request parameter.
type ParamError struct {
	Param string
	// Source is where the parameter is read from: "query" or "path".
	Source string
}

func (e *ParamError) Error() string {
	name := e.Param
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name + " " + e.Source + " parameter is required"
}

func requireParam(param, source, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ParamError{Param: param, Source: source}
	}
	return nil
}
