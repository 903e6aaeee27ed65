package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "Cozy", "price": 100}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "Cozy", "price": 100,}`, // trailing comma
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: ErrEmptyBody.Error(),
		},
		{
			name:        "trailing value",
			requestBody: `{"name": "Cozy"} {"name": "Again"}`,
			wantErr:     true,
			errContains: "single JSON value",
		},
		{
			name:        "wrong type",
			requestBody: `{"price": "cheap"}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target payload
			err := DecodeJSON(req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Cozy", target.Name)
			assert.Equal(t, 100.0, target.Price)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	body := `{"name": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))

	var target map[string]string
	err := DecodeJSON(req, &target)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxErr)
}

type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error { return s.err }

func TestValidateRequest(t *testing.T) {
	type request struct {
		FirstName string `json:"first_name" validate:"required,max=50"`
	}

	t.Run("valid struct", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(request{FirstName: "Alice"}))
	})

	t.Run("errors use json field names", func(t *testing.T) {
		err := ValidateRequest(request{})

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		require.Len(t, validationErrs, 1)
		assert.Equal(t, "first_name", validationErrs[0].Field())
		assert.Equal(t, "required", validationErrs[0].Tag())
	})

	t.Run("custom Validate method wins", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(selfValidating{}))
		assert.Error(t, ValidateRequest(selfValidating{err: assert.AnError}))
	})
}
