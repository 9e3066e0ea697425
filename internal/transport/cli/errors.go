package cli

import (
	"errors"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// userError carries a message meant for the terminal while keeping the cause for errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// describe rewrites service errors into messages suited for the terminal.
// Validation errors list every offending field.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return &userError{msg: ve.Error(), err: err}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &userError{msg: "not found: " + err.Error(), err: err}
	case errors.Is(err, domain.ErrAlreadyExists):
		return &userError{msg: "word already in deck: " + err.Error(), err: err}
	case errors.Is(err, domain.ErrConflict):
		return &userError{msg: "cannot undo: " + err.Error(), err: err}
	}
	return err
}
