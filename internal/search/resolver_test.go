package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrevrochas/techshop/internal/models"
	"github.com/andrevrochas/techshop/internal/search"
)

func TestResolveByID_Found(t *testing.T) {
	product, ok := search.ResolveByID(sampleCatalog(), "2")
	assert.True(t, ok)
	assert.Equal(t, "Fonte 600W", product.Name)
}

func TestResolveByID_NotFound(t *testing.T) {
	_, ok := search.ResolveByID(sampleCatalog(), "does-not-exist")
	assert.False(t, ok)
}

func TestResolveByID_EmptyCatalog(t *testing.T) {
	_, ok := search.ResolveByID(nil, "1")
	assert.False(t, ok)
}

func TestResolveByID_NoNormalization(t *testing.T) {
	catalog := []models.Product{{ID: "AbC", Name: "X"}}
	_, ok := search.ResolveByID(catalog, "abc")
	assert.False(t, ok)
}

func TestResolveByQuery_EmptyQueryYieldsEmptyList(t *testing.T) {
	catalog := sampleCatalog()
	assert.Empty(t, search.ResolveByQuery(catalog, ""))
	assert.Empty(t, search.ResolveByQuery(catalog, "   "))
	// punctuation-only normalizes to empty as well
	assert.Empty(t, search.ResolveByQuery(catalog, "!?!"))
}

func TestResolveByQuery_DelegatesToFilter(t *testing.T) {
	result := search.ResolveByQuery(sampleCatalog(), "rtx")
	assert.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestResolveByQuery_NoMatches(t *testing.T) {
	result := search.ResolveByQuery(sampleCatalog(), "teclado")
	assert.Empty(t, result)
}

func TestResolveByQuery_OrderedMatches(t *testing.T) {
	catalog := sampleCatalog()
	result := search.ResolveByQuery(catalog, "gb")
	for i := 1; i < len(result); i++ {
		assert.Greater(t, indexOf(catalog, result[i].ID), indexOf(catalog, result[i-1].ID))
	}
}
