package reports_test

import (
	"testing"

	"hit-reports/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRegistry_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerA := newNamedProvider(ctrl, "logged_in")
	providerB := newNamedProvider(ctrl, "browsers")

	registry, err := reports.NewRegistry(
		[]reports.Provider{providerA, providerB},
		[]string{"logged_in"},
	)
	require.NoError(t, err)

	assert.Len(t, registry.Providers(), 2)
	assert.True(t, registry.Enabled("logged_in"))
	assert.False(t, registry.Enabled("browsers"), "registered but not enabled")

	found, ok := registry.Lookup("browsers")
	assert.True(t, ok)
	assert.Same(t, providerB, found)

	_, ok = registry.Lookup("unknown")
	assert.False(t, ok)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerA := newNamedProvider(ctrl, "logged_in")
	providerB := newNamedProvider(ctrl, "logged_in")

	registry, err := reports.NewRegistry([]reports.Provider{providerA, providerB}, nil)
	assert.Nil(t, registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate provider name "logged_in"`)
}

func TestNewRegistry_EmptyName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newNamedProvider(ctrl, "")

	registry, err := reports.NewRegistry([]reports.Provider{provider}, nil)
	assert.Nil(t, registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestNewRegistry_EnabledNameNotRegistered(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newNamedProvider(ctrl, "logged_in")

	registry, err := reports.NewRegistry([]reports.Provider{provider}, []string{"logged_in", "browsers"})
	assert.Nil(t, registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `enabled provider "browsers" is not registered`)
}
