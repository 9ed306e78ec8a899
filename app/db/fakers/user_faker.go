package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/technomart/technomart/app/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@technomart.dev"
	adminPassword = "admin12345"
)

// AdminUserFaker builds the back-office account every fresh install needs.
// The password is only meant for local development.
func AdminUserFaker() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Email:     adminEmail,
		FirstName: "Admin",
		LastName:  "TechnoMart",
		Password:  hashPassword(adminPassword),
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
}

func CustomerFaker() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Phone:     faker.Phonenumber(),
		Password:  hashPassword(faker.Password()),
		Role:      models.RoleCustomer,
		IsActive:  true,
	}
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash seed password:", err)
	}
	return string(hashed)
}
