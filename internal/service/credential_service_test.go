package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/liftoff/internal/llm"
	"github.com/alexanderramin/liftoff/internal/repository"
	"github.com/alexanderramin/liftoff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredentialService(t *testing.T) CredentialService {
	t.Helper()
	t.Setenv(APIKeyEnv, "")
	return NewCredentialService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
}

func TestCredentialService_MissingByDefault(t *testing.T) {
	svc := newCredentialService(t)
	ctx := context.Background()

	assert.False(t, svc.Has(ctx))
	assert.Equal(t, CredentialNone, svc.Source(ctx))
	_, err := svc.APIKey(ctx)
	assert.ErrorIs(t, err, llm.ErrCredentialMissing)
}

func TestCredentialService_SaveTrimsAndStores(t *testing.T) {
	svc := newCredentialService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "  AIza-test  "))

	assert.True(t, svc.Has(ctx))
	assert.Equal(t, CredentialStored, svc.Source(ctx))
	key, err := svc.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AIza-test", key)
}

func TestCredentialService_RejectsBlank(t *testing.T) {
	svc := newCredentialService(t)

	assert.ErrorIs(t, svc.Save(context.Background(), "   "), ErrBlankCredential)
	assert.False(t, svc.Has(context.Background()))
}

func TestCredentialService_EnvOverridesStored(t *testing.T) {
	svc := newCredentialService(t)
	ctx := context.Background()
	require.NoError(t, svc.Save(ctx, "stored-key"))

	t.Setenv(APIKeyEnv, "env-key")

	key, err := svc.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
	assert.Equal(t, CredentialEnv, svc.Source(ctx))
}

func TestCredentialService_Clear(t *testing.T) {
	svc := newCredentialService(t)
	ctx := context.Background()
	require.NoError(t, svc.Save(ctx, "k"))

	require.NoError(t, svc.Clear(ctx))
	assert.False(t, svc.Has(ctx))
}
