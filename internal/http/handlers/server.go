package handlers

import (
	repo "github.com/andrevrochas/techshop/internal/repo"
)

var (
	catalogRepo repo.CatalogRepository
	cartRepo    repo.CartRepository
)

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetCartRepo(r repo.CartRepository) {
	cartRepo = r
}
