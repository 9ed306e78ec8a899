package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/utils/calc"
)

var specTemplates = map[string][]models.ProductSpecification{
	"General": {
		{GroupName: "General", Name: "Model Year", SortOrder: 0},
		{GroupName: "General", Name: "Warranty", SortOrder: 1},
	},
	"Technical": {
		{GroupName: "Technical", Name: "Weight", SortOrder: 0},
		{GroupName: "Technical", Name: "Battery Life", SortOrder: 1},
	},
}

func ProductFaker(category *models.Category, brand *models.Brand) *models.Product {
	name := fmt.Sprintf("%s %s %d", brand.Name, category.Name, rand.Intn(900)+100)
	productID := uuid.New().String()

	price := decimal.NewFromFloat(float64(rand.Intn(190000)+1000) / 100)

	var originalPrice *decimal.Decimal
	if rand.Intn(3) == 0 {
		higher := price.Mul(decimal.NewFromFloat(1.25)).Round(2)
		originalPrice = &higher
	}

	stock := rand.Intn(50)

	numImages := rand.Intn(3) + 1
	images := make([]models.ProductImage, 0, numImages)
	for i := 0; i < numImages; i++ {
		images = append(images, models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			URL:       fmt.Sprintf("/images/products/%s-%d.jpg", slug.Make(name), i),
			Alt:       name,
			SortOrder: i,
			IsPrimary: i == 0,
		})
	}

	specs := make([]models.ProductSpecification, 0, 4)
	for _, group := range specTemplates {
		for _, tpl := range group {
			spec := tpl
			spec.ID = uuid.New().String()
			spec.ProductID = productID
			spec.Value = faker.Word()
			specs = append(specs, spec)
		}
	}

	return &models.Product{
		ID:              productID,
		Name:            name,
		Slug:            slug.Make(name + "-" + uuid.NewString()[:6]),
		Sku:             fmt.Sprintf("TM-%s", uuid.NewString()[:8]),
		Description:     faker.Paragraph(),
		Price:           price,
		OriginalPrice:   originalPrice,
		DiscountPercent: calc.DiscountPercent(price, originalPrice),
		CategoryID:      category.ID,
		BrandID:         &brand.ID,
		StockQuantity:   stock,
		InStock:         stock > 0,
		IsActive:        true,
		IsFeatured:      rand.Intn(4) == 0,
		IsNew:           rand.Intn(3) == 0,
		IsHot:           rand.Intn(5) == 0,
		Images:          images,
		Specifications:  specs,
	}
}
