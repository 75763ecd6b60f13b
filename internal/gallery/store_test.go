package gallery

import (
	"fmt"
	"testing"
	"time"

	"designgenius/internal/domain"
)

func asset(id string) domain.GeneratedAsset {
	return domain.GeneratedAsset{
		ID:          id,
		Category:    domain.CategoryLogo,
		Prompt:      "prompt " + id,
		CreatedAt:   time.Now(),
		AspectRatio: domain.RatioSquare,
	}
}

func TestInsertNewestFirst(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		if err := s.Insert(asset(fmt.Sprintf("a%d", i))); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	for i, wantID := range []string{"a2", "a1", "a0"} {
		if list[i].ID != wantID {
			t.Fatalf("list[%d] = %s, want %s", i, list[i].ID, wantID)
		}
	}
}

func TestInsertDuplicateID(t *testing.T) {
	s := NewStore()
	if err := s.Insert(asset("dup")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Insert(asset("dup")); err != domain.ErrDuplicateAsset {
		t.Fatalf("duplicate insert error = %v, want ErrDuplicateAsset", err)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := NewStore()
	if err := s.Insert(asset("keep")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	s.Remove("missing")
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestRemoveSelectedClearsSelection(t *testing.T) {
	s := NewStore()
	if err := s.Insert(asset("one")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Select("one"); err != nil {
		t.Fatalf("select: %v", err)
	}

	s.Remove("one")

	if _, ok := s.Selected(); ok {
		t.Fatal("selection should be cleared after removing selected asset")
	}
}

func TestRemoveOtherKeepsSelection(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"one", "two"} {
		if err := s.Insert(asset(id)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := s.Select("one"); err != nil {
		t.Fatalf("select: %v", err)
	}

	s.Remove("two")

	selected, ok := s.Selected()
	if !ok || selected.ID != "one" {
		t.Fatalf("selected = %v, %v; want one", selected.ID, ok)
	}
}

func TestSelectUnknown(t *testing.T) {
	s := NewStore()
	if err := s.Select("ghost"); err != domain.ErrNotFound {
		t.Fatalf("select unknown error = %v, want ErrNotFound", err)
	}
}

func TestInsertManyDeleteAllButOne(t *testing.T) {
	const n = 8
	s := NewStore()
	for i := 0; i < n; i++ {
		if err := s.Insert(asset(fmt.Sprintf("a%d", i))); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	// Delete in an order unrelated to insertion, keeping a3.
	for _, id := range []string{"a7", "a0", "a5", "a1", "a6", "a2", "a4"} {
		s.Remove(id)
	}

	list := s.List()
	if len(list) != 1 || list[0].ID != "a3" {
		t.Fatalf("remaining = %v, want exactly a3", list)
	}
}
