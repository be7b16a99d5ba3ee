package apperror_test

import (
	"net/http"
	"testing"

	"job-alerts-backend/pkg/apperror"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("db password is hunter2")
	appErr := apperror.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Internal Server Error", appErr.Error())
	assert.True(t, errors.Is(appErr, cause))
}

func TestAs(t *testing.T) {
	wrapped := errors.Wrap(apperror.Validation([]string{"Job title: is required"}), "create alert")

	appErr, ok := apperror.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, []string{"Job title: is required"}, appErr.Details)

	_, ok = apperror.As(errors.New("plain"))
	assert.False(t, ok)
}
