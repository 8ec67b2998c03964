// cmd/seeder/generator.go
package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

var (
	adjectives = []string{"Collected", "Illustrated", "Annotated", "Complete", "Pocket", "Deluxe", "Abridged", "Revised"}
	subjects   = []string{"Poems", "Letters", "Atlas", "Cookbook", "Field Guide", "Almanac", "Stories", "Essays", "Herbarium"}
	suppliers  = []struct{ name, phone string }{
		{"Magic BookPrint", "+48 888 888 888"},
		{"Chilton House", "+1 555 0100"},
		{"Paper & Ink", "+44 20 7946 0958"},
		{"Northwind Press", "+1 555 0199"},
		{"Leaf Distributors", "+49 30 901820"},
	}
)

// generator produces plausible products from a seeded source so runs are
// reproducible.
type generator struct {
	rng *rand.Rand
}

func newGenerator(seed uint64) *generator {
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *generator) product(n int) domain.Product {
	supplier := suppliers[g.rng.IntN(len(suppliers))]

	// between 1.99 and 79.99
	price := decimal.New(int64(199+g.rng.IntN(7801)), -2)

	return domain.Product{
		Name: fmt.Sprintf("%s %s, Vol. %d",
			adjectives[g.rng.IntN(len(adjectives))],
			subjects[g.rng.IntN(len(subjects))],
			n),
		SupplierName:  supplier.name,
		SupplierPhone: supplier.phone,
		Price:         price.Shift(2).IntPart(),
		Quantity:      int64(g.rng.IntN(25)),
	}
}

func (g *generator) products(count int) []domain.Product {
	out := make([]domain.Product, count)
	for i := range out {
		out[i] = g.product(i + 1)
	}
	return out
}
