package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timehuddle/models"
)

func host(id string, created time.Time) models.EventHost {
	return models.EventHost{ID: id, Name: "host " + id, CreatedAt: created}
}

func TestSelectLuckyUser_FewestBookingsWins(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	eligible := []models.EventHost{
		host("a", created),
		host("b", created.Add(time.Hour)),
		host("c", created.Add(2*time.Hour)),
	}
	counts := map[string]int{"a": 3, "b": 1, "c": 5}

	lucky, err := SelectLuckyUser(eligible, counts)
	require.NoError(t, err)
	assert.Equal(t, "b", lucky.ID)
}

func TestSelectLuckyUser_TieGoesToFirstInOrder(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	eligible := []models.EventHost{
		host("a", created),
		host("b", created.Add(time.Hour)),
		host("c", created.Add(2*time.Hour)),
	}
	counts := map[string]int{"a": 3, "b": 1, "c": 1}

	lucky, err := SelectLuckyUser(eligible, counts)
	require.NoError(t, err)
	assert.Equal(t, "b", lucky.ID, "ties resolve to the earliest host in input order")
}

func TestSelectLuckyUser_MissingCountMeansZero(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	eligible := []models.EventHost{
		host("a", created),
		host("b", created.Add(time.Hour)),
	}
	counts := map[string]int{"a": 2}

	lucky, err := SelectLuckyUser(eligible, counts)
	require.NoError(t, err)
	assert.Equal(t, "b", lucky.ID)
}

func TestSelectLuckyUser_NoEligibleHosts(t *testing.T) {
	_, err := SelectLuckyUser(nil, nil)
	require.Error(t, err)
	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestSelectLuckyUser_Deterministic(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	eligible := []models.EventHost{
		host("x", created),
		host("y", created),
		host("z", created),
	}
	counts := map[string]int{"x": 0, "y": 0, "z": 0}

	for i := 0; i < 50; i++ {
		lucky, err := SelectLuckyUser(eligible, counts)
		require.NoError(t, err)
		require.Equal(t, "x", lucky.ID, "selection must never be random")
	}
}
