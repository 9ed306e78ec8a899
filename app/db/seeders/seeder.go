package seeders

import (
	"log"

	"github.com/technomart/technomart/app/db/fakers"
	"gorm.io/gorm"
)

const productsPerCategory = 8

// DBSeed populates a development database with an admin account and a fake
// electronics catalog. Safe to re-run: the admin is matched by email and the
// catalog rows by slug.
func DBSeed(db *gorm.DB) error {
	admin := fakers.AdminUserFaker()
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin account %s", admin.Email)

	brands := fakers.BrandFakers()
	for _, brand := range brands {
		if err := db.FirstOrCreate(brand, "slug = ?", brand.Slug).Error; err != nil {
			return err
		}
	}

	categories := fakers.CategoryFakers()
	for _, category := range categories {
		if err := db.FirstOrCreate(category, "slug = ?", category.Slug).Error; err != nil {
			return err
		}

		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(category, brands[i%len(brands)])
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d categories, %d brands and %d products",
		len(categories), len(brands), len(categories)*productsPerCategory)
	return nil
}
