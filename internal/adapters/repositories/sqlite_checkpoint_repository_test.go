package repositories

import (
	"context"
	"os"
	"path/filepath"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoSeedPath = "../../../data/seeds/checkpoints.json"

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSqliteCheckpointRepositoryListsSeedInOrder(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(conn))
	require.NoError(t, SeedFromJSON(conn, repoSeedPath))

	repo := NewSqliteCheckpointRepository(conn)
	checkpoints, err := repo.ListCheckpoints(context.Background())
	require.NoError(t, err)
	require.Len(t, checkpoints, 15)

	assert.Equal(t, "airport-entrance", checkpoints[0].ID)
	assert.Equal(t, "luggage-storage", checkpoints[14].ID)

	catalog, err := domain.NewCatalog(checkpoints)
	require.NoError(t, err)
	set := catalog.Mandatory()
	assert.Equal(t, []string{"airport-entrance", "customs", "gate-23"}, set.Initial())

	jade, ok := catalog.Lookup("jade-dragon")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryDining, jade.Category)
	assert.Equal(t, 60, jade.DwellMinutes())
	assert.Equal(t, 55.0, jade.X)
	assert.False(t, jade.Mandatory)
}

func TestSeedFromJSONIsIdempotentAndKeepsNullDurations(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	seed := writeSeed(t, `[
		{"id": "gate", "name": "Gate", "type": "gate", "x": 90, "y": 50, "isMandatory": true},
		{"id": "cafe", "name": "Cafe", "type": "dining", "x": 40, "y": 40, "estimatedDuration": 12}
	]`)

	require.NoError(t, InitSchema(conn))
	require.NoError(t, SeedFromJSON(conn, seed))
	require.NoError(t, SeedFromJSON(conn, seed))

	checkpoints, err := NewSqliteCheckpointRepository(conn).ListCheckpoints(context.Background())
	require.NoError(t, err)
	require.Len(t, checkpoints, 2)

	assert.Nil(t, checkpoints[0].EstimatedMinutes)
	assert.Equal(t, domain.DefaultDwellMinutes, checkpoints[0].DwellMinutes())
	assert.True(t, checkpoints[0].Mandatory)
	require.NotNil(t, checkpoints[1].EstimatedMinutes)
	assert.Equal(t, 12, *checkpoints[1].EstimatedMinutes)
}

func TestSeedFromJSONRejectsInvalidSeed(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, InitSchema(conn))

	tests := map[string]string{
		"bad category": `[{"id": "x", "name": "X", "type": "security", "x": 1, "y": 1}]`,
		"out of range": `[{"id": "x", "name": "X", "type": "gate", "x": 150, "y": 1}]`,
		"empty":        `[]`,
		"not json":     `{`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, SeedFromJSON(conn, writeSeed(t, body)))
		})
	}

	assert.Error(t, SeedFromJSON(conn, filepath.Join(t.TempDir(), "missing.json")))

	checkpoints, err := NewSqliteCheckpointRepository(conn).ListCheckpoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, checkpoints, "a rejected seed writes nothing")
}

func TestRepositoriesRequireDB(t *testing.T) {
	_, err := NewSqliteCheckpointRepository(nil).ListCheckpoints(context.Background())
	assert.Error(t, err)
	_, err = NewSQLCheckpointRepository(nil).ListCheckpoints(context.Background())
	assert.Error(t, err)
	assert.Error(t, InitSchema(nil))
	assert.Error(t, InitSQLSchema(context.Background(), nil))
}
