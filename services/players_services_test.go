package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerPointsDefaultToZero(t *testing.T) {
	store := newMemStore()
	svc := NewPlayerService(store, store, store)

	points, err := svc.GetPoints(context.Background(), 404)
	require.NoError(t, err)
	assert.Equal(t, 0, points)
}

func TestPlayerStatusJoinsSolvedFlags(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	store.addFlag("X{b}", 25, "Beta")
	store.addFlag("X{c}", 50, "Gamma")
	submitter := NewSubmissionService(store, store, store)
	svc := NewPlayerService(store, store, store)
	ctx := context.Background()

	_, err := submitter.Submit(ctx, 1, "X{b}")
	require.NoError(t, err)

	statuses, err := svc.Status(ctx, 1)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	// Registration order, solved only where credited.
	assert.Equal(t, "Alpha", statuses[0].ChallengeName)
	assert.False(t, statuses[0].Solved)
	assert.Equal(t, "Beta", statuses[1].ChallengeName)
	assert.True(t, statuses[1].Solved)
	assert.Equal(t, 25, statuses[1].Points)
	assert.Equal(t, "Gamma", statuses[2].ChallengeName)
	assert.False(t, statuses[2].Solved)
}

func TestPlayerStatusForUnknownParticipant(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := NewPlayerService(store, store, store)

	statuses, err := svc.Status(context.Background(), 999)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Solved)
}
