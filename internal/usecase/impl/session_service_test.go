package impl

import (
	"context"
	"testing"

	"autosphere/internal/domain/entity"
	"autosphere/internal/domain/repository"
	"autosphere/internal/infra/persistence/memory"
	mockRepo "autosphere/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (repository.KVStore, *sessionService) {
	t.Helper()

	kv := memory.NewKVStore()
	srv, ok := NewSessionService(kv, newDiscardLogger()).(*sessionService)
	require.True(t, ok)

	return kv, srv
}

func TestSessionService_LoginNormalizesAndPersists(t *testing.T) {
	kv, srv := createTestSessionService(t)
	ctx := context.Background()

	principal, err := srv.Login(ctx, entity.Principal{FName: "Ada", LName: "Lovelace", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, principal.Role)
	assert.Equal(t, entity.StatusActive, principal.Status)
	assert.Equal(t, entity.VerificationUnverified, principal.VerificationStatus)
	assert.Nil(t, principal.Address)
	assert.Nil(t, principal.KYCDocument)
	assert.Equal(t, entity.RoleCustomer, srv.Role(ctx))

	_, found, err := kv.Get(ctx, repository.KeySession)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSessionService_LoginKeepsCallerFields(t *testing.T) {
	_, srv := createTestSessionService(t)
	ctx := context.Background()

	principal, err := srv.Login(ctx, entity.Principal{
		Email:              "dealer@example.com",
		Role:               entity.RoleDealer,
		VerificationStatus: entity.VerificationVerified,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleDealer, principal.Role)
	assert.Equal(t, entity.VerificationVerified, principal.VerificationStatus)
}

func TestSessionService_Logout(t *testing.T) {
	kv, srv := createTestSessionService(t)
	ctx := context.Background()

	_, err := srv.Login(ctx, entity.Principal{Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, srv.Logout(ctx))

	assert.Nil(t, srv.Current(ctx))
	assert.Equal(t, entity.Role(""), srv.Role(ctx))

	_, found, err := kv.Get(ctx, repository.KeySession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionService_UpdateUserWithoutSession(t *testing.T) {
	kv, srv := createTestSessionService(t)
	ctx := context.Background()

	updated, err := srv.UpdateUser(ctx, entity.PrincipalPatch{FName: ptr("Grace")})

	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Nil(t, srv.Current(ctx))

	_, found, err := kv.Get(ctx, repository.KeySession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionService_UpdateUserReplacesNestedValues(t *testing.T) {
	_, srv := createTestSessionService(t)
	ctx := context.Background()

	_, err := srv.Login(ctx, entity.Principal{
		Email:   "ada@example.com",
		Address: &entity.Address{Street: "1 Old Road", City: "Lagos", Zip: "100001"},
	})
	require.NoError(t, err)

	updated, err := srv.UpdateUser(ctx, entity.PrincipalPatch{
		Phone:   ptr("+234 1"),
		Address: &entity.Address{City: "Abuja"},
	})
	require.NoError(t, err)

	assert.Equal(t, "+234 1", updated.Phone)
	assert.Equal(t, &entity.Address{City: "Abuja"}, updated.Address)
	assert.Equal(t, "ada@example.com", updated.Email)
}

func TestSessionService_CurrentReturnsCopy(t *testing.T) {
	_, srv := createTestSessionService(t)
	ctx := context.Background()

	_, err := srv.Login(ctx, entity.Principal{Email: "ada@example.com", Address: &entity.Address{City: "Lagos"}})
	require.NoError(t, err)

	current := srv.Current(ctx)
	current.Address.City = "Changed"
	current.FName = "Changed"

	again := srv.Current(ctx)
	assert.Equal(t, "Lagos", again.Address.City)
	assert.Empty(t, again.FName)
}

func TestSessionService_RestoresCachedPrincipal(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, repository.KeySession, []byte(`{"fname":"Old","email":"old@example.com"}`)))

	srv := NewSessionService(kv, newDiscardLogger())

	current := srv.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "old@example.com", current.Email)
	assert.Equal(t, entity.RoleCustomer, current.Role)
	assert.Equal(t, entity.StatusActive, current.Status)
}

func TestSessionService_MalformedCacheStartsSignedOut(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, repository.KeySession, []byte(`{not json`)))

	srv := NewSessionService(kv, newDiscardLogger())

	assert.Nil(t, srv.Current(ctx))
}

func TestSessionService_LoginStorageFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := mockRepo.NewMockKVStore(t)
	kv.EXPECT().Get(ctx, repository.KeySession).Return(nil, false, nil).Once()
	kv.EXPECT().Set(ctx, repository.KeySession, mock.Anything).Return(errors.New("disk full")).Once()

	srv := NewSessionService(kv, newDiscardLogger())

	principal, err := srv.Login(ctx, entity.Principal{Email: "ada@example.com"})

	require.Error(t, err)
	assert.Nil(t, principal)
	assert.Nil(t, srv.Current(ctx))
}
