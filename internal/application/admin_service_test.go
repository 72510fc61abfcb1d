package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitrabahan/backend/internal/domain/entity"
)

func TestAdminStatsCountsByRole(t *testing.T) {
	t.Parallel()
	accounts := newMemAccounts()
	auth := newAuthService(accounts)
	admin := NewAdminService(accounts)

	for i, in := range []RegisterInput{
		{Name: "s1", Email: "s1@example.com", Password: "secret", Role: entity.RoleSupplier},
		{Name: "s2", Email: "s2@example.com", Password: "secret", Role: entity.RoleSupplier},
		{Name: "s3", Email: "s3@example.com", Password: "secret", Role: entity.RoleSupplier},
		{Name: "m1", Email: "m1@example.com", Password: "secret", Role: entity.RoleManufacturer},
		{Name: "m2", Email: "m2@example.com", Password: "secret", Role: entity.RoleManufacturer},
	} {
		_, _, err := auth.Register(context.Background(), in)
		require.NoError(t, err, "account %d", i)
	}

	st, err := admin.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), st.Total)
	require.Equal(t, int64(5), st.Active)
	require.Equal(t, int64(0), st.Inactive)
	require.Equal(t, int64(3), st.ByRole[entity.RoleSupplier])
	require.Equal(t, int64(2), st.ByRole[entity.RoleManufacturer])
}

func TestAdminListAccountsNewestFirst(t *testing.T) {
	t.Parallel()
	accounts := newMemAccounts()
	auth := newAuthService(accounts)
	admin := NewAdminService(accounts)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, _, err := auth.Register(context.Background(), RegisterInput{Name: email, Email: email, Password: "secret"})
		require.NoError(t, err)
	}

	list, err := admin.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b@example.com", list[0].Email)
}
