package catalog

import "strings"

// Filter returns the subset of products whose name contains term,
// case-insensitively, preserving the input order. An empty term returns
// the input unchanged; no match returns an empty slice, which the grid
// renders as "no products" rather than an error.
func Filter(products []Product, term string) []Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
