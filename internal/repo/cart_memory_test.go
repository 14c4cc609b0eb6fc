package repo_test

import (
	"testing"

	"github.com/andrevrochas/techshop/internal/models"
	"github.com/andrevrochas/techshop/internal/repo"
)

func TestCartAdd_SnapshotsProduct(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	item := r.Add(models.Product{
		ID:       "p1",
		Name:     "Fonte 600W",
		Price:    floatPtr(349.9),
		ImageURL: "https://example.com/fonte.jpg",
	})

	if item.ProductID != "p1" || item.Name != "Fonte 600W" {
		t.Errorf("unexpected snapshot: %+v", item)
	}
	if item.Price == nil || *item.Price != 349.9 {
		t.Errorf("expected snapshot price 349.9, got %v", item.Price)
	}
	if r.Count() != 1 {
		t.Errorf("expected count 1, got %d", r.Count())
	}
}

func TestCartAdd_DuplicateProductsMakeSeparateLines(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	p := models.Product{ID: "p1", Name: "Memória RAM"}

	r.Add(p)
	r.Add(p)

	if r.Count() != 2 {
		t.Fatalf("expected 2 lines, got %d", r.Count())
	}
}

func TestCartRemove_RestoresPreAddLength(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	r.Add(models.Product{ID: "p1", Name: "A"})
	before := r.Count()

	r.Add(models.Product{ID: "p2", Name: "B"})
	r.Remove("p2")

	if r.Count() != before {
		t.Errorf("expected count %d after add+remove, got %d", before, r.Count())
	}
}

func TestCartRemove_FirstMatchOnly(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	p := models.Product{ID: "p1", Name: "A"}
	r.Add(p)
	r.Add(p)

	r.Remove("p1")

	if r.Count() != 1 {
		t.Fatalf("expected one remaining line, got %d", r.Count())
	}
	if r.GetAll()[0].ProductID != "p1" {
		t.Error("remaining line should still reference p1")
	}
}

func TestCartRemove_AbsentIDIsNoOp(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	r.Add(models.Product{ID: "p1", Name: "A"})

	r.Remove("ghost")

	if r.Count() != 1 {
		t.Errorf("expected untouched cart, got count %d", r.Count())
	}
}

func TestCartGetAll_InsertionOrder(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	r.Add(models.Product{ID: "p1", Name: "A"})
	r.Add(models.Product{ID: "p2", Name: "B"})
	r.Add(models.Product{ID: "p3", Name: "C"})

	items := r.GetAll()
	want := []string{"p1", "p2", "p3"}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].ProductID)
		}
	}
}

func TestCartGetAll_ReturnsCopy(t *testing.T) {
	r := repo.NewInMemoryCartRepository()
	r.Add(models.Product{ID: "p1", Name: "A"})

	view := r.GetAll()
	view[0].Name = "mutated"

	if r.GetAll()[0].Name != "A" {
		t.Error("mutating the returned view must not affect the store")
	}
}
