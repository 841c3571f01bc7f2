package service

import (
	"fmt"
)

type ErrPackageFailed struct {
	error
	Index int
	Code  string
	Cause error
}

func NewErrPackageFailed(index int, code string, cause error) *ErrPackageFailed {
	return &ErrPackageFailed{
		error: fmt.Errorf("package %d (%s): %w", index, code, cause),
		Index: index,
		Code:  code,
		Cause: cause,
	}
}

func (e *ErrPackageFailed) Unwrap() error {
	return e.Cause
}
