package session

import (
	"testing"

	"github.com/lmercier/dealdesk/internal/deal"
)

func TestReplaceAllSwapsWholesale(t *testing.T) {
	s := NewStore()

	if _, ok := s.UploadedAt(); ok {
		t.Fatal("fresh store must not report an upload time")
	}

	first := []deal.Deal{{ID: "1"}, {ID: "2"}}
	id1 := s.ReplaceAll(first)
	if id1 == "" {
		t.Fatal("expected an upload id")
	}
	if got := s.Deals(); len(got) != 2 {
		t.Fatalf("expected 2 deals, got %d", len(got))
	}
	if _, ok := s.UploadedAt(); !ok {
		t.Fatal("expected an upload time after ReplaceAll")
	}

	second := []deal.Deal{{ID: "9"}}
	id2 := s.ReplaceAll(second)
	if id2 == id1 {
		t.Error("each upload must get a fresh id")
	}
	got := s.Deals()
	if len(got) != 1 || got[0].ID != "9" {
		t.Errorf("expected the new collection to fully replace the old, got %+v", got)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.ReplaceAll([]deal.Deal{{ID: "1"}})
	s.Clear()

	if got := s.Deals(); len(got) != 0 {
		t.Errorf("expected empty collection after clear, got %d deals", len(got))
	}
	if _, ok := s.UploadedAt(); ok {
		t.Error("expected no upload time after clear")
	}
	snap := s.Snapshot()
	if snap.UploadID != "" || len(snap.Deals) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestSnapshotConsistency(t *testing.T) {
	s := NewStore()
	s.ReplaceAll([]deal.Deal{{ID: "1"}})

	snap := s.Snapshot()
	if len(snap.Deals) != 1 || snap.UploadID == "" || snap.UploadedAt.IsZero() {
		t.Errorf("snapshot must carry deals, upload id and upload time together, got %+v", snap)
	}
}
