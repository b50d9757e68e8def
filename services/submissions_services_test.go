package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubmissionService(store *memStore) *SubmissionService {
	return NewSubmissionService(store, store, store)
}

func TestSubmitAcceptsRegisteredFlag(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	outcome, err := svc.Submit(context.Background(), 1, "X{a}")
	require.NoError(t, err)

	assert.Equal(t, OutcomeAccepted, outcome.Status)
	assert.Equal(t, 10, outcome.PointsAwarded)
	assert.Equal(t, 10, outcome.TotalPoints)
	assert.Equal(t, "Alpha", outcome.ChallengeName)
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	outcome, err := svc.Submit(context.Background(), 1, "  X{a}\n")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome.Status)
}

func TestSubmitAccumulatesAcrossFlags(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	store.addFlag("X{b}", 25, "Beta")
	svc := newTestSubmissionService(store)

	first, err := svc.Submit(context.Background(), 7, "X{a}")
	require.NoError(t, err)
	assert.Equal(t, 10, first.TotalPoints)

	second, err := svc.Submit(context.Background(), 7, "X{b}")
	require.NoError(t, err)
	assert.Equal(t, 25, second.PointsAwarded)
	assert.Equal(t, 35, second.TotalPoints)
}

func TestSubmitDuplicateIsIdempotent(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	_, err := svc.Submit(context.Background(), 1, "X{a}")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		outcome, err := svc.Submit(context.Background(), 1, "X{a}")
		require.NoError(t, err)
		assert.Equal(t, OutcomeDuplicate, outcome.Status)
		assert.Equal(t, 0, outcome.PointsAwarded)
		assert.Equal(t, 10, outcome.TotalPoints)
	}

	total, err := store.GetPoints(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestSubmitUnknownFlagRejectedWithoutScoreChange(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	outcome, err := svc.Submit(context.Background(), 2, "not-a-real-flag")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, outcome.Status)
	assert.Equal(t, ReasonUnknownFlag, outcome.Reason)

	total, err := store.GetPoints(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	rec, ok := store.incorrect[key(2, "not-a-real-flag")]
	require.True(t, ok, "first incorrect attempt should be audited")
	assert.Equal(t, ReasonWrong, rec.Reason)
}

func TestSubmitAuditKeepsFirstReason(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	ctx := context.Background()

	// First incorrect attempt is recorded with reason "wrong".
	_, err := svc.Submit(ctx, 1, "X{bogus}")
	require.NoError(t, err)

	// A later attempt against the same (participant, flag) pair is a silent
	// no-op, even when it carries a different reason.
	require.NoError(t, store.RecordIncorrect(ctx, 1, "X{bogus}", ReasonAlreadySubmitted, "later"))

	rec := store.incorrect[key(1, "X{bogus}")]
	assert.Equal(t, ReasonWrong, rec.Reason)
}

func TestSubmitDuplicateRecordsAuditEntry(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	_, err := svc.Submit(context.Background(), 1, "X{a}")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 1, "X{a}")
	require.NoError(t, err)

	rec, ok := store.incorrect[key(1, "X{a}")]
	require.True(t, ok)
	assert.Equal(t, ReasonAlreadySubmitted, rec.Reason)
}

func TestSubmitConcurrentDuplicatesCreditOnce(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{race}", 50, "Race")
	svc := newTestSubmissionService(store)

	const n = 32
	outcomes := make([]SubmissionOutcome, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = svc.Submit(context.Background(), 9, "X{race}")
		}(i)
	}
	wg.Wait()

	accepted, duplicate := 0, 0
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		switch outcomes[i].Status {
		case OutcomeAccepted:
			accepted++
		case OutcomeDuplicate:
			duplicate++
		default:
			t.Fatalf("unexpected outcome %q", outcomes[i].Status)
		}
	}

	assert.Equal(t, 1, accepted, "exactly one submission must win the race")
	assert.Equal(t, n-1, duplicate)

	total, err := store.GetPoints(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 50, total, "the race must not double-credit")
}

func TestSubmitStorageFailureIsPerCall(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)

	store.failCredit = true
	_, err := svc.Submit(context.Background(), 1, "X{a}")
	require.Error(t, err)

	// The failure is confined to that call; the next one succeeds.
	store.failCredit = false
	outcome, err := svc.Submit(context.Background(), 1, "X{a}")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome.Status)
}

func TestSubmitScenario(t *testing.T) {
	store := newMemStore()
	store.addFlag("X{a}", 10, "Alpha")
	svc := newTestSubmissionService(store)
	ctx := context.Background()

	first, err := svc.Submit(ctx, 1, "X{a}")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, first.Status)
	assert.Equal(t, 10, first.PointsAwarded)
	assert.Equal(t, 10, first.TotalPoints)

	second, err := svc.Submit(ctx, 1, "X{a}")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, second.Status)
	assert.Equal(t, 10, second.TotalPoints)

	third, err := svc.Submit(ctx, 2, "wrong")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, third.Status)

	points, err := store.GetPoints(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, points)

	top, err := store.TopN(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(1), top[0].UserID)
	assert.Equal(t, 10, top[0].Points)
}
