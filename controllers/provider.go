package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gislain231/greenshare/db"
	"github.com/gislain231/greenshare/models"
	"github.com/gislain231/greenshare/utils"
)

// GetBusinessProfile returns the authenticated provider's business
// details.
func GetBusinessProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var business models.BusinessDetails
	if err := db.DB.Where("provider_id = ?", userID).First(&business).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business profile not found",
		})
	}
	return c.JSON(fiber.Map{
		"business": business,
	})
}

// UpdateBusinessProfile updates the provider's business details.
func UpdateBusinessProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var business models.BusinessDetails
	if err := db.DB.Where("provider_id = ?", userID).First(&business).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business profile not found",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Approval state is owned by the approval worker, never the
	// provider.
	fieldsToIgnore := []string{"id", "ID", "provider_id", "approved", "approved_at"}
	for _, field := range fieldsToIgnore {
		delete(updateData, field)
	}

	if err := db.DB.Model(&business).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update business profile",
		})
	}
	return c.JSON(fiber.Map{
		"business": business,
	})
}

// UploadBusinessLogo uploads the business logo to Cloudinary and stores
// the secure URL.
func UploadBusinessLogo(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var business models.BusinessDetails
	if err := db.DB.Where("provider_id = ?", userID).First(&business).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business profile not found",
		})
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get logo file",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open logo file",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("business_%d_%d", userID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "business_logos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload logo to Cloudinary",
		})
	}

	if err := db.DB.Model(&business).Update("logo_url", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save logo URL",
		})
	}
	return c.JSON(fiber.Map{
		"logo_url": secureURL,
	})
}

// GetProviderBookings lists bookings addressed to the authenticated
// provider's business.
func GetProviderBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var business models.BusinessDetails
	if err := db.DB.Where("provider_id = ?", userID).First(&business).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business profile not found",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Where("provider = ?", business.BusinessName).Order("created_at").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}
