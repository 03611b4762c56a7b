package service

import (
	"errors"
	"fmt"
	"routineTracker/internal/models/task"
)

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}
	return busErr
}

// NewValidationError раскладывает ошибки полей в details
func NewValidationError(err error) *BusinessError {
	busErr := NewBusinessError(CodeValidation, "задача не прошла проверку")
	busErr.Err = err

	var fieldErrs task.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			busErr.Details[fe.Field] = fe.Reason
		}
	}
	return busErr
}

func NewStoreUnavailable(err error) *BusinessError {
	busErr := NewBusinessError(CodeStoreUnavailable, "хранилище задач недоступно")
	busErr.Err = err
	return busErr
}
