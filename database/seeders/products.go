package seeders

import "github.com/shashiranjanraj/vastra/app/models"

func init() {
	Register("products", SeedProducts)
}

// SeedProducts writes the sample catalogue.
func SeedProducts(dir string) error {
	products := []models.Product{
		{
			ID:          1,
			Name:        "Classic Cotton Tee",
			Price:       499.00,
			ImageURL:    "/static/img/classic-tee.jpg",
			Description: "Everyday crew-neck tee in combed cotton.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Category:    "tops",
		},
		{
			ID:          2,
			Name:        "Indigo Denim Jacket",
			Price:       2499.00,
			ImageURL:    "/static/img/denim-jacket.jpg",
			Description: "Mid-weight denim jacket, garment washed.",
			Sizes:       []string{"M", "L", "XL"},
			Category:    "outerwear",
		},
		{
			ID:          3,
			Name:        "Linen Kurta",
			Price:       1299.00,
			ImageURL:    "/static/img/linen-kurta.jpg",
			Description: "Breathable linen kurta for warm evenings.",
			Sizes:       []string{"S", "M", "L"},
			Category:    "tops",
		},
		{
			ID:          4,
			Name:        "Slim Chino Trousers",
			Price:       1599.00,
			ImageURL:    "/static/img/chino.jpg",
			Description: "Stretch-cotton chinos with a tapered leg.",
			Sizes:       []string{"30", "32", "34", "36"},
			Category:    "bottoms",
		},
		{
			ID:          5,
			Name:        "Wool Blend Scarf",
			Price:       799.00,
			ImageURL:    "/static/img/scarf.jpg",
			Description: "Soft two-tone scarf, one size.",
			Sizes:       []string{"One Size"},
			Category:    "accessories",
		},
	}

	return writeDocument(dir, "products.json", products)
}
