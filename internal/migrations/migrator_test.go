package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "schema")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.Contains(t, names, "000001_create_reward_codes.up.sql")
	assert.Contains(t, names, "000001_create_reward_codes.down.sql")
}

func TestMigrationFiles_CodeIsPrimaryKey(t *testing.T) {
	data, err := fs.ReadFile(migrationFiles, "schema/000001_create_reward_codes.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), "code           VARCHAR(8)   PRIMARY KEY")
}
