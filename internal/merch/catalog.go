package merch

import "sort"

// Options lists the selectable variants for one product. An empty slice means
// the option is not offered for that product.
type Options struct {
	Sizes  []string
	Colors []string
}

// Catalog mirrors the storefront's variantOptions table in public/script.js.
// Keep the two in sync when adding products.
var Catalog = map[string]Options{
	"sticker":  {},
	"mug":      {Sizes: []string{"11oz", "15oz"}, Colors: []string{"white", "black"}},
	"tee":      {Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"white", "black"}},
	"mousepad": {},
	"pillow":   {Sizes: []string{"18x18"}, Colors: []string{"white", "black"}},
	"poster":   {Sizes: []string{"A3", "A2"}},
}

// Variant is one sellable (product, size, color) combination.
type Variant struct {
	Product string
	Size    string
	Color   string
}

// AllVariants enumerates every combination the storefront can sell, in stable
// product order. Products without a size or color list contribute a single
// combination with that part empty.
func AllVariants() []Variant {
	products := make([]string, 0, len(Catalog))
	for p := range Catalog {
		products = append(products, p)
	}
	sort.Strings(products)

	var out []Variant
	for _, p := range products {
		opts := Catalog[p]
		sizes := opts.Sizes
		if len(sizes) == 0 {
			sizes = []string{""}
		}
		colors := opts.Colors
		if len(colors) == 0 {
			colors = []string{""}
		}
		for _, s := range sizes {
			for _, c := range colors {
				out = append(out, Variant{Product: p, Size: s, Color: c})
			}
		}
	}
	return out
}
