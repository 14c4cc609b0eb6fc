package search

import (
	"strings"

	"github.com/andrevrochas/techshop/internal/models"
)

// Spec holds the active filter selections. It is assembled whole by the
// caller on every user action and applied atomically; there is no partial
// merging of criteria.
type Spec struct {
	Category string // exact match after normalization; "" or the sentinel passes all
	Option   string // substring match against brand aliases
	Query    string // free-text substring match over the searchable surface
}

// Apply returns the products matching every criterion of spec, preserving
// input order. It is a pure projection: the input slice is never mutated and
// the result is recomputed in full on each call.
func Apply(products []models.Product, spec Spec) []models.Product {
	category := Normalize(spec.Category)
	option := Normalize(spec.Option)
	query := Normalize(spec.Query)

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !byCategory(p, category) {
			continue
		}
		if !byOption(p, option) {
			continue
		}
		if !byQuery(p, query) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// isAllCategories reports whether the normalized category selection means
// "no category constraint". "todas" is the label the storefront uses for the
// show-everything button.
func isAllCategories(category string) bool {
	return category == "" || category == "all" || category == "todas"
}

func byCategory(p models.Product, category string) bool {
	if isAllCategories(category) {
		return true
	}
	return Normalize(p.Category) == category
}

func byOption(p models.Product, option string) bool {
	if option == "" {
		return true
	}
	for _, alias := range brandAliases(p) {
		if strings.Contains(Normalize(alias), option) {
			return true
		}
	}
	return false
}

func byQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(searchSurface(p), query)
}

// brandAliases lists the product's brand names, canonical brand first.
func brandAliases(p models.Product) []string {
	aliases := make([]string, 0, 1+len(p.BrandAliases))
	if p.Brand != "" {
		aliases = append(aliases, p.Brand)
	}
	aliases = append(aliases, p.BrandAliases...)
	return aliases
}

// searchSurface joins the normalized name, description, category, brand
// aliases and id into one space-separated string. Because the fields are
// joined, a query can match across a field boundary; that looseness is
// accepted behavior.
func searchSurface(p models.Product) string {
	parts := make([]string, 0, 4+len(p.BrandAliases))
	parts = append(parts, Normalize(p.Name), Normalize(p.Description), Normalize(p.Category))
	for _, alias := range brandAliases(p) {
		parts = append(parts, Normalize(alias))
	}
	parts = append(parts, Normalize(p.ID))
	return strings.Join(parts, " ")
}
