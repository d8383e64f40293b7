package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/pagetable"
)

func Test_Static_Load(t *testing.T) {
	users := SeedUsers(3)
	s := NewStatic(users)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, users, got)

	got[0].Name = "changed"
	require.NotEqual(t, "changed", users[0].Name)
}

func Test_Static_Load_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic(SeedUsers(3)).Load(ctx)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.ErrorIs(t, err, context.Canceled)
}

func Test_Static_Load_Nil(t *testing.T) {
	got, err := (*Static[User])(nil).Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func Test_Sorted_Load(t *testing.T) {
	users := SeedUsers(5)
	s := NewSorted[User](NewStatic(users), UserGetters, pagetable.OrderBy{Column: "id", Direction: pagetable.DirectionDESC})

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, uint(5), got[0].ID)
	require.Equal(t, uint(1), got[4].ID)
}

func Test_Sorted_Load_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := Func[User](func(context.Context) ([]User, error) { return nil, boom })

	_, err := NewSorted[User](failing, UserGetters).Load(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = NewSorted[User](NewStatic(SeedUsers(2)), UserGetters, pagetable.OrderBy{Column: "age", Direction: pagetable.DirectionASC}).
		Load(context.Background())
	require.Error(t, err)
}

func Test_SeedUsers(t *testing.T) {
	users := SeedUsers(95)

	require.Len(t, users, 95)
	seen := make(map[string]struct{}, len(users))
	for i, u := range users {
		require.Equal(t, uint(i+1), u.ID)
		require.NotEmpty(t, u.Name)
		require.NotEmpty(t, u.Role)

		_, dup := seen[u.Email]
		require.False(t, dup, "duplicate email %s", u.Email)
		seen[u.Email] = struct{}{}
	}

	require.Empty(t, SeedUsers(0))
	require.Empty(t, SeedUsers(-1))
	require.Equal(t, users, SeedUsers(95))
}

func Test_ParseSort_UserColumns(t *testing.T) {
	orderings, err := pagetable.ParseSort([]string{"role asc", "id desc"}, UserColumns)
	require.NoError(t, err)

	got, err := pagetable.SortRecords(SeedUsers(8), orderings, UserGetters)
	require.NoError(t, err)
	require.Equal(t, "Admin", got[0].Role)
	require.Equal(t, uint(5), got[0].ID)
}
