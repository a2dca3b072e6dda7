package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestDesiredStock(t *testing.T) {
	tests := []struct {
		minimum, reorder, want int
	}{
		{3, 5, 8},
		{0, 5, 5},
		{10, 2, 12},
		{0, 0, 0},
	}
	for _, tt := range tests {
		item := Item{MinimumStock: tt.minimum, ReorderQuantity: tt.reorder}
		if got := item.DesiredStock(); got != tt.want {
			t.Errorf("DesiredStock(min=%d, reorder=%d) = %d, want %d", tt.minimum, tt.reorder, got, tt.want)
		}
	}
}

func TestReorderURL(t *testing.T) {
	id := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")

	got := ReorderURL("http://localhost:3000", id)
	want := "http://localhost:3000/scan/a81bc81b-dead-4e5d-abff-90865d1e13b1"
	if got != want {
		t.Errorf("ReorderURL = %q, want %q", got, want)
	}

	// Trailing slash must not double up.
	if got := ReorderURL("http://localhost:3000/", id); got != want {
		t.Errorf("ReorderURL with trailing slash = %q, want %q", got, want)
	}
}

func TestMemoryRepoGetAndList(t *testing.T) {
	repo := NewMemoryRepo()
	first := Item{ID: uuid.New(), Name: "Laser Cutter Lens"}
	second := Item{ID: uuid.New(), Name: "Sandpaper 120"}
	repo.Put(first)
	repo.Put(second)

	got, err := repo.Get(first.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != first.Name {
		t.Errorf("Get returned %q, want %q", got.Name, first.Name)
	}

	if _, err := repo.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	list := repo.List()
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("List should preserve insertion order, got %v", list)
	}
}

func TestMemoryRepoLoadFile(t *testing.T) {
	seed := `[
		{
			"id": "a81bc81b-dead-4e5d-abff-90865d1e13b1",
			"name": "Laser Cutter Lens",
			"minimum_stock": 3,
			"reorder_quantity": 5,
			"category": {"name": "Optics", "color": "#10b981"}
		}
	]`
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}

	repo := NewMemoryRepo()
	if err := repo.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	item, err := repo.Get(uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if item.Category == nil || item.Category.Name != "Optics" {
		t.Errorf("category not loaded: %+v", item.Category)
	}

	if err := repo.LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestMemoryRepoPutReplaces(t *testing.T) {
	repo := NewMemoryRepo()
	item := Item{ID: uuid.New(), Name: "Before"}
	repo.Put(item)
	item.Name = "After"
	repo.Put(item)

	got, err := repo.Get(item.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "After" {
		t.Errorf("Put should replace, got %q", got.Name)
	}
	if len(repo.List()) != 1 {
		t.Errorf("replacing must not duplicate entries")
	}
}
