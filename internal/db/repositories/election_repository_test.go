package repositories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// electionColumns parses the elections table out of the initial migration
// and reports which columns are declared NOT NULL.
func electionColumns(t *testing.T) map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "1_initial.up.sql"))
	require.NoError(t, err)

	_, body, found := strings.Cut(string(ddl), "CREATE TABLE elections (")
	require.True(t, found)
	body, _, found = strings.Cut(body, ");")
	require.True(t, found)

	notNull := make(map[string]bool)
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if len(fields) < 2 || strings.EqualFold(fields[0], "PRIMARY") {
			continue
		}
		notNull[fields[0]] = strings.Contains(strings.ToUpper(line), "NOT NULL")
	}

	require.NotEmpty(t, notNull)
	return notNull
}

func scheduleAssignments(t *testing.T) map[string]string {
	t.Helper()

	assignments := make(map[string]string)
	for _, assignment := range strings.Split(scheduleConflictUpdate, ",") {
		column, value, found := strings.Cut(assignment, "=")
		require.True(t, found)
		assignments[strings.TrimSpace(column)] = strings.TrimSpace(value)
	}
	return assignments
}

func TestScheduleConflictUpdate_NeverNullsNotNullColumns(t *testing.T) {
	notNull := electionColumns(t)

	for column, value := range scheduleAssignments(t) {
		assert.Contains(t, notNull, column)
		if strings.EqualFold(value, "NULL") {
			assert.False(t, notNull[column],
				"conflict update sets NOT NULL column %s to NULL; the re-schedule upsert would be rejected", column)
		}
	}
}

func TestScheduleConflictUpdate_RestartsCycleInPlace(t *testing.T) {
	assignments := scheduleAssignments(t)

	assert.Equal(t, "EXCLUDED.status", assignments["status"])
	assert.Equal(t, "EXCLUDED.start_at", assignments["start_at"])
	assert.Equal(t, "EXCLUDED.created_by", assignments["created_by"])
	assert.Equal(t, "EXCLUDED.created_at", assignments["created_at"])
	assert.Equal(t, "''", assignments["vote_message_id"])
	assert.Equal(t, "NULL", assignments["final_results"])
}
