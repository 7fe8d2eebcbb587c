package adapter

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage flattens the server's JSON error bodies into one line and
// falls back to the raw body.
func errorMessage(raw []byte) string {
	var validation models.ValidationErrorResponse
	if err := json.Unmarshal(raw, &validation); err == nil && len(validation.Errors) > 0 {
		parts := make([]string, 0, len(validation.Errors))
		for _, field := range slices.Sorted(maps.Keys(validation.Errors)) {
			parts = append(parts, field+" "+validation.Errors[field])
		}
		return strings.Join(parts, ", ")
	}

	var single models.ErrorResponse
	if err := json.Unmarshal(raw, &single); err == nil && single.Error != "" {
		return single.Error
	}

	return strings.TrimSpace(string(raw))
}
