package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/avc-dev/rewards/internal/config/db"
	"github.com/avc-dev/rewards/internal/migrations"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestDB создает тестовую базу данных для интеграционных тестов.
// Тесты пропускаются, если TEST_DATABASE_DSN не задан
func setupTestDB(t *testing.T) *DatabaseStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	database, err := db.NewConfig(dsn).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator := migrations.NewMigrator(database.DB(), zap.NewNop())
	require.NoError(t, migrator.RunUp())

	_, err = database.Pool.Exec(context.Background(), "DELETE FROM reward_codes")
	require.NoError(t, err)

	return NewDatabaseStore(database.Pool)
}

func TestDatabaseStore_InsertLookupRedeem(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)
	entry := newEntry("DBDB0001", 0)

	require.NoError(t, store.Insert(ctx, entry))
	assert.ErrorIs(t, store.Insert(ctx, entry), model.ErrAlreadyExists)

	found, err := store.Lookup(ctx, entry.Code)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, found.ID)
	assert.Equal(t, entry.Description, found.Description)
	assert.True(t, entry.CreatedAt.Equal(found.CreatedAt))
	assert.Nil(t, found.RedeemedAt)

	redeemed, err := store.Redeem(ctx, entry.Code, baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, redeemed.RedeemedAt)

	_, err = store.Redeem(ctx, entry.Code, baseTime.Add(2*time.Hour))
	assert.ErrorIs(t, err, model.ErrAlreadyRedeemed)

	_, err = store.Redeem(ctx, "MISSING1", baseTime)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = store.Lookup(ctx, "MISSING1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDatabaseStore_List(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)
	require.NoError(t, store.Insert(ctx, newEntry("DBDB0001", time.Minute)))
	require.NoError(t, store.Insert(ctx, newEntry("DBDB0002", 2*time.Minute)))
	require.NoError(t, store.Insert(ctx, newEntry("DBDB0003", 3*time.Minute)))
	_, err := store.Redeem(ctx, "DBDB0001", baseTime.Add(time.Hour))
	require.NoError(t, err)

	entries, total, err := store.List(ctx, model.ListRewardsParams{Page: 1, PerPage: 2, SortDir: model.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, entries, 2)
	assert.Equal(t, model.Code("DBDB0003"), entries[0].Code)

	entries, total, err = store.List(ctx, model.ListRewardsParams{Page: 1, PerPage: 10, Status: model.StatusRedeemed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, model.Code("DBDB0001"), entries[0].Code)
}

func TestBuildListQueries(t *testing.T) {
	tests := []struct {
		name             string
		params           model.ListRewardsParams
		expectedFragment []string
		expectedArgs     int
	}{
		{
			name:             "No filters",
			params:           model.ListRewardsParams{Page: 1, PerPage: 10, SortDir: model.SortDesc},
			expectedFragment: []string{"FROM reward_codes", "ORDER BY created_at DESC, code DESC", "LIMIT 10", "OFFSET 0"},
			expectedArgs:     0,
		},
		{
			name:             "Search and status",
			params:           model.ListRewardsParams{Page: 3, PerPage: 5, Search: "cake", Status: model.StatusActive, SortDir: model.SortAsc},
			expectedFragment: []string{"code ILIKE $1 ESCAPE '\\'", "customer_email ILIKE $3", "redeemed_at IS NULL", "ORDER BY created_at ASC, code ASC", "LIMIT 5", "OFFSET 10"},
			expectedArgs:     3,
		},
		{
			name:             "Page beyond offset range",
			params:           model.ListRewardsParams{Page: 1 << 62, PerPage: 100},
			expectedFragment: []string{"LIMIT 100", "OFFSET 2147483600"},
			expectedArgs:     0,
		},
		{
			name:             "Redeemed only",
			params:           model.ListRewardsParams{Page: 1, PerPage: 10, Status: model.StatusRedeemed},
			expectedFragment: []string{"redeemed_at IS NOT NULL"},
			expectedArgs:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countSQL, countArgs, listSQL, listArgs, err := buildListQueries(tt.params)

			require.NoError(t, err)
			assert.Contains(t, countSQL, "SELECT COUNT(*) FROM reward_codes")
			assert.NotContains(t, countSQL, "LIMIT")
			for _, fragment := range tt.expectedFragment {
				assert.Contains(t, listSQL, fragment)
			}
			assert.Len(t, countArgs, tt.expectedArgs)
			assert.Len(t, listArgs, tt.expectedArgs)
		})
	}
}

func TestBuildListQueries_EscapesWildcards(t *testing.T) {
	tests := []struct {
		name            string
		search          string
		expectedPattern string
	}{
		{name: "Plain text", search: "cake", expectedPattern: "%cake%"},
		{name: "Underscore", search: "_", expectedPattern: `%\_%`},
		{name: "Percent", search: "50%", expectedPattern: `%50\%%`},
		{name: "Backslash", search: `a\b`, expectedPattern: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := model.ListRewardsParams{Page: 1, PerPage: 10, Search: tt.search}

			_, countArgs, _, listArgs, err := buildListQueries(params)

			require.NoError(t, err)
			require.Len(t, listArgs, 3)
			for _, arg := range append(countArgs, listArgs...) {
				assert.Equal(t, tt.expectedPattern, arg)
			}
		})
	}
}
