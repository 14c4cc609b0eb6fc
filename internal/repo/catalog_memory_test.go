package repo_test

import (
	"errors"
	"testing"

	"github.com/andrevrochas/techshop/internal/models"
	"github.com/andrevrochas/techshop/internal/repo"
)

func floatPtr(v float64) *float64 { return &v }

func TestCatalogAdd_AssignsIDAndPrepends(t *testing.T) {
	r := repo.NewInMemoryCatalogRepository()

	first, err := r.Add(models.Product{Name: "Fonte 600W", Price: floatPtr(349.9)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected an assigned id")
	}

	second, err := r.Add(models.Product{Name: "Gabinete Gamer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := r.GetAll()
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("expected newest product first, got %q", all[0].Name)
	}
	if all[1].ID != first.ID {
		t.Errorf("expected oldest product last, got %q", all[1].Name)
	}
}

func TestCatalogAdd_RoundTripByID(t *testing.T) {
	r := repo.NewInMemoryCatalogRepository()

	created, err := r.Add(models.Product{
		Name:        "Placa de Vídeo RTX",
		Price:       floatPtr(2999.0),
		Category:    "Placa de Vídeo",
		Brand:       "Nvidia",
		Description: "12GB GDDR6",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != created.Name || got.Category != created.Category || got.Brand != created.Brand {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, created)
	}
	if got.Price == nil || *got.Price != 2999.0 {
		t.Errorf("expected price 2999.0, got %v", got.Price)
	}
}

func TestCatalogAdd_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
	}{
		{"empty name", models.Product{Name: "", Price: floatPtr(10)}},
		{"whitespace name", models.Product{Name: "   "}},
		{"negative price", models.Product{Name: "Mouse", Price: floatPtr(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := repo.NewInMemoryCatalogRepository()
			_, err := r.Add(tt.product)

			var ve *repo.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(r.GetAll()) != 0 {
				t.Error("failed add must not mutate the catalog")
			}
		})
	}
}

func TestCatalogAdd_AbsentPriceStaysAbsent(t *testing.T) {
	r := repo.NewInMemoryCatalogRepository()
	created, err := r.Add(models.Product{Name: "Cooler"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Price != nil {
		t.Errorf("expected unknown price to stay nil, got %v", *created.Price)
	}
}

func TestCatalogGetByID_NotFound(t *testing.T) {
	r := repo.NewInMemoryCatalogRepository()
	_, err := r.GetByID("missing")
	if !errors.Is(err, repo.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogGetAll_EmptyCatalog(t *testing.T) {
	r := repo.NewInMemoryCatalogRepository()
	if len(r.GetAll()) != 0 {
		t.Error("expected empty catalog")
	}
}
