package service_test

import (
	"context"
	"testing"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
)

func TestTopIsSortedAndCapped(t *testing.T) {
	ctx := context.Background()
	repo := newMemLeaderboardRepo()
	svc := service.NewLeaderboardService(repo, nil)

	for i := 0; i < 15; i++ {
		username := string(rune('a' + i))
		if err := svc.Upsert(ctx, username, i); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	entries, err := svc.Top(ctx, service.TopSize)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatalf("not sorted non-increasing at %d: %+v", i, entries)
		}
	}
	if entries[0].Score != 14 {
		t.Fatalf("expected top score 14, got %d", entries[0].Score)
	}
}

func TestTopOnEmptyBoard(t *testing.T) {
	ctx := context.Background()
	svc := service.NewLeaderboardService(newMemLeaderboardRepo(), nil)

	entries, err := svc.Top(ctx, service.TopSize)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty slice, got %+v", entries)
	}
}

func TestUpsertNotifiesBroadcaster(t *testing.T) {
	ctx := context.Background()
	svc := service.NewLeaderboardService(newMemLeaderboardRepo(), nil)

	b := &recordingBroadcaster{}
	svc.SetBroadcaster(b)

	if err := svc.Upsert(ctx, "alice", 7); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if len(b.broadcasts) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(b.broadcasts))
	}
	got := b.broadcasts[0]
	if len(got) != 1 || got[0].Username != "alice" || got[0].Score != 7 {
		t.Fatalf("unexpected broadcast payload: %+v", got)
	}
}
