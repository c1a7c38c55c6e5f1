package services

import "bakery-service/models"

func strPtr(s string) *string { return &s }

// sampleProducts is the fixed catalog inserted by SeedProducts.
func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Almond Croissant",
			Description: strPtr("Buttery pastry layered with almond cream and toasted almonds."),
			PriceCents:  450,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1524182576065-1c814ad3a8be?q=80&w=1400&auto=format&fit=crop"),
			Category:    strPtr("pastry"),
			InStock:     true,
		},
		{
			Name:        "Sourdough Loaf",
			Description: strPtr("Naturally leavened, crackly crust, tender and tangy crumb."),
			PriceCents:  600,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1549931319-a545dcf3bc73?q=80&w=1400&auto=format&fit=crop"),
			Category:    strPtr("bread"),
			InStock:     true,
		},
		{
			Name:        "Cannoli",
			Description: strPtr("Classic ricotta filling with citrus zest and chocolate chips."),
			PriceCents:  375,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1619527492558-2ec3cf1134f9?q=80&w=1400&auto=format&fit=crop"),
			Category:    strPtr("pastry"),
			InStock:     true,
		},
		{
			Name:        "Tiramisu Slice",
			Description: strPtr("Espresso-soaked ladyfingers layered with mascarpone cream."),
			PriceCents:  525,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1613478223719-e5e4766473a6?q=80&w=1400&auto=format&fit=crop"),
			Category:    strPtr("dessert"),
			InStock:     true,
		},
	}
}
