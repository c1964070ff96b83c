package intake

import (
	"fmt"
	"testing"
)

func TestAdd_SequentialIDs(t *testing.T) {
	s := NewStore(10)

	for want := 1; want <= 3; want++ {
		rec := s.Add("Ana", "housing", "")
		if rec.ID != want {
			t.Errorf("Add #%d ID = %d, want %d", want, rec.ID, want)
		}
		if rec.Status != StatusNew {
			t.Errorf("new intake status = %q, want %q", rec.Status, StatusNew)
		}
	}
}

func TestAdd_CapacityEvictsOldest(t *testing.T) {
	s := NewStore(3)

	for i := 1; i <= 5; i++ {
		s.Add(fmt.Sprintf("person-%d", i), "food", "")
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.TotalSeen() != 5 {
		t.Errorf("TotalSeen() = %d, want 5", s.TotalSeen())
	}

	list := s.List()
	if list[0].ID != 5 || list[len(list)-1].ID != 3 {
		t.Errorf("expected ids 5..3 newest-first, got %d..%d", list[0].ID, list[len(list)-1].ID)
	}

	// Evicted ids are gone for good.
	if _, ok := s.Resolve(1); ok {
		t.Error("Resolve(1) should fail after eviction")
	}
}

func TestResolve(t *testing.T) {
	s := NewStore(10)
	rec := s.Add("Ben", "id", "lost wallet")

	got, ok := s.Resolve(rec.ID)
	if !ok {
		t.Fatal("Resolve failed for a known id")
	}
	if got.Status != StatusResolved {
		t.Errorf("status = %q, want %q", got.Status, StatusResolved)
	}

	if _, ok := s.Resolve(999); ok {
		t.Error("Resolve(999) should report not found")
	}

	// Status change must be visible via List.
	if s.List()[0].Status != StatusResolved {
		t.Error("List should reflect resolved status")
	}
}
