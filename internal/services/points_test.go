package services

import (
	"errors"
	"testing"
)

func TestPointsForActionSingleTier(t *testing.T) {
	// challenge_join: first 5 earn 5 each, beyond that nothing.
	for prior := 0; prior < 5; prior++ {
		got, err := PointsForAction(ActionChallengeJoin, prior)
		if err != nil {
			t.Fatalf("prior=%d: unexpected error: %v", prior, err)
		}
		if got != 5 {
			t.Errorf("prior=%d: got %d points, want 5", prior, got)
		}
	}
	// The 6th join (5 prior) earns zero.
	got, err := PointsForAction(ActionChallengeJoin, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("6th join: got %d points, want 0", got)
	}
}

func TestPointsForActionTieredDecay(t *testing.T) {
	// thread_create: 3 x 10, then 2 x 5, then 0.
	want := []int{10, 10, 10, 5, 5, 0, 0, 0}
	for prior, w := range want {
		got, err := PointsForAction(ActionThreadCreate, prior)
		if err != nil {
			t.Fatalf("prior=%d: unexpected error: %v", prior, err)
		}
		if got != w {
			t.Errorf("prior=%d: got %d points, want %d", prior, got, w)
		}
	}
}

func TestPointsForActionSubmitTiers(t *testing.T) {
	want := []int{25, 25, 10, 10, 10, 0}
	for prior, w := range want {
		got, err := PointsForAction(ActionChallengeSubmit, prior)
		if err != nil {
			t.Fatalf("prior=%d: unexpected error: %v", prior, err)
		}
		if got != w {
			t.Errorf("prior=%d: got %d points, want %d", prior, got, w)
		}
	}
}

func TestPointsForActionUnknown(t *testing.T) {
	_, err := PointsForAction("profile_viewed", 0)
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestPointsForActionNegativeCount(t *testing.T) {
	_, err := PointsForAction(ActionForumReply, -1)
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
}

func TestPointsForActionLargeCount(t *testing.T) {
	// Far past every tier: still zero, never an error or underflow.
	got, err := PointsForAction(ActionUpvoteReceived, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("got %d points, want 0", got)
	}
}

func TestPointSchedulesCoverAllActions(t *testing.T) {
	for _, action := range []string{
		ActionThreadCreate,
		ActionForumReply,
		ActionChallengeJoin,
		ActionChallengeSubmit,
		ActionUpvoteReceived,
	} {
		if _, ok := pointSchedules[action]; !ok {
			t.Errorf("no tier table for %s", action)
		}
	}
}
