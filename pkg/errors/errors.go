package errors

import "fmt"

// Error codes
const (
	CodeCardError  = "CARD_ERROR"
	CodeFetch      = "FETCH_ERROR"
	CodeTemplate   = "TEMPLATE_ERROR"
	CodeRender     = "RENDER_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

type CardError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *CardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CardError) Unwrap() error {
	return e.Cause
}

func NewCardError(message, code string, context map[string]any) *CardError {
	return &CardError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *CardError) WithCause(cause error) *CardError {
	e.Cause = cause
	return e
}

// FetchError covers transport failures and non-success HTTP statuses while
// downloading the profile page. The pipeline treats it as recoverable.
type FetchError struct {
	*CardError
	URL        string
	StatusCode int
}

func NewFetchError(message, url string, statusCode int, cause error) *FetchError {
	return &FetchError{
		CardError: &CardError{
			Message: message,
			Code:    CodeFetch,
			Context: map[string]any{
				"url":         url,
				"status_code": statusCode,
			},
			Cause: cause,
		},
		URL:        url,
		StatusCode: statusCode,
	}
}

// TemplateError means the card template could not be located or parsed.
// It is fatal to the run.
type TemplateError struct {
	*CardError
	TemplatePath string
}

func NewTemplateError(message, templatePath string, cause error) *TemplateError {
	return &TemplateError{
		CardError: &CardError{
			Message: message,
			Code:    CodeTemplate,
			Context: map[string]any{
				"template": templatePath,
			},
			Cause: cause,
		},
		TemplatePath: templatePath,
	}
}

// RenderError means substitution or the output write failed. Fatal to the run.
type RenderError struct {
	*CardError
	TemplatePath string
	OutputPath   string
}

func NewRenderError(message, templatePath, outputPath string, cause error) *RenderError {
	return &RenderError{
		CardError: &CardError{
			Message: message,
			Code:    CodeRender,
			Context: map[string]any{
				"template": templatePath,
				"output":   outputPath,
			},
			Cause: cause,
		},
		TemplatePath: templatePath,
		OutputPath:   outputPath,
	}
}

type ValidationError struct {
	*CardError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		CardError: &CardError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

func IsFetchError(err error) bool {
	_, ok := err.(*FetchError)
	return ok
}
