package util_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/spec-kit/bistro-service/pkg/util"
)

func TestUnauthorizedShape(t *testing.T) {
	err := util.NewUnauthorized()
	domainErr := util.ToDomainError(err)
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
	assert.Equal(t, "unauthorized access", domainErr.Message)
}

func TestForbiddenShape(t *testing.T) {
	err := util.NewForbidden()
	domainErr := util.ToDomainError(err)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	assert.Equal(t, "forbidden access", domainErr.Message)
}

func TestNoRowsMapsToNotFound(t *testing.T) {
	domainErr := util.ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestUnknownErrorHidesCause(t *testing.T) {
	cause := errors.New("connection refused to 10.0.0.5")
	domainErr := util.ToDomainError(cause)
	require.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	// the cause stays server-side; the client message is generic
	assert.Equal(t, "internal server error", domainErr.Message)
	assert.ErrorIs(t, domainErr, cause)
}

func TestUpstreamErrorIs5xx(t *testing.T) {
	domainErr := util.ToDomainError(util.NewUpstreamError(errors.New("gateway down")))
	assert.GreaterOrEqual(t, domainErr.HTTPStatus, 500)
}
