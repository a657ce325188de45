package enterprise

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxErrorBody = 4 << 10

// apiErrorBody is the error envelope returned by the cluster REST API.
type apiErrorBody struct {
	ErrorCode   string `json:"error_code"`
	Description string `json:"description"`
	Message     string `json:"message"`
	Detail      string `json:"detail"`
	Error       string `json:"error"`
}

// decodeResponse maps resp onto T or an *Error. Every input yields exactly
// one of the two.
func decodeResponse[T any](resp *Response) (T, error) {
	var zero T

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, apiError(resp)
	}

	if _, ok := any(zero).(Empty); ok {
		return zero, nil
	}

	// A JSON null carries no more than an empty body does.
	if body := bytes.TrimSpace(resp.Body); len(body) == 0 || bytes.Equal(body, []byte("null")) {
		if _, ok := any(&zero).(*any); ok {
			return zero, nil
		}
		return zero, &Error{
			Kind:    KindDecode,
			Code:    CodeDecode,
			Message: fmt.Sprintf("empty response body, expected %T", zero),
		}
	}

	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return zero, decodeError(err)
	}
	return out, nil
}

func decodeError(err error) *Error {
	e := &Error{
		Kind:    KindDecode,
		Code:    CodeDecode,
		Message: "invalid response body",
		Cause:   err,
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "<root>"
		}
		e.Message = fmt.Sprintf("field %s: expected %s, got JSON %s", field, typeErr.Type, typeErr.Value)
	case errors.As(err, &syntaxErr):
		e.Message = fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	}
	return e
}

func apiError(resp *Response) *Error {
	e := &Error{
		Kind:       KindAPI,
		StatusCode: resp.StatusCode,
	}

	var envelope apiErrorBody
	if err := json.Unmarshal(resp.Body, &envelope); err == nil {
		e.Code = envelope.ErrorCode
		e.Message = firstNonEmpty(envelope.Description, envelope.Message, envelope.Detail, envelope.Error)
	}

	if e.Message == "" {
		body := strings.TrimSpace(string(resp.Body))
		e.Message = truncateUTF8(body, maxErrorBody)
	}
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
