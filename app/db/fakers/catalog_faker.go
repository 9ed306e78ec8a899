package fakers

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/technomart/technomart/app/models"
)

var categoryNames = []string{
	"Smartphones",
	"Laptops",
	"Tablets",
	"Audio",
	"Wearables",
	"Gaming",
}

var brandNames = []string{
	"Nexora",
	"Voltix",
	"Kyron",
	"AstraTech",
	"Pulseware",
}

func CategoryFakers() []*models.Category {
	categories := make([]*models.Category, 0, len(categoryNames))
	for i, name := range categoryNames {
		categories = append(categories, &models.Category{
			ID:        uuid.New().String(),
			Name:      name,
			Slug:      slug.Make(name),
			SortOrder: i,
			IsActive:  true,
		})
	}
	return categories
}

func BrandFakers() []*models.Brand {
	brands := make([]*models.Brand, 0, len(brandNames))
	for _, name := range brandNames {
		brands = append(brands, &models.Brand{
			ID:   uuid.New().String(),
			Name: name,
			Slug: slug.Make(name),
		})
	}
	return brands
}
