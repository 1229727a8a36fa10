package db

import (
	"log"

	"github.com/gislain231/greenshare/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the default roles and the demo customer account. It is
// idempotent: existing records are left untouched.
func Seed() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleProvider, Description: "Service provider offering vehicles or detailing"},
		{Name: models.RoleCustomer, Description: "Customer who can book providers"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	seedDemoCustomer()
}

// seedDemoCustomer creates the test@green.com demo account used for
// customer login in development. The password is bcrypt-hashed like
// every other account.
func seedDemoCustomer() {
	var existing models.User
	if DB.Where("email = ?", "test@green.com").First(&existing).RowsAffected > 0 {
		return
	}

	var customerRole models.Role
	if err := DB.Where("name = ?", models.RoleCustomer).First(&customerRole).Error; err != nil {
		log.Printf("Error finding customer role: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("test1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing demo password: %v", err)
		return
	}

	demo := models.User{
		Name:       "Green Demo",
		Email:      "test@green.com",
		Password:   string(hashed),
		IsVerified: true,
		RoleID:     customerRole.ID,
	}
	if err := DB.Create(&demo).Error; err != nil {
		log.Printf("Error creating demo customer: %v", err)
		return
	}
	log.Println("✅ Seeded demo customer test@green.com")
}
