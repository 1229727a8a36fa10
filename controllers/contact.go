package controllers

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact relays a contact-form submission to the support inbox.
func Contact(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please fill in all required fields.",
		})
	}

	support := os.Getenv("SUPPORT_EMAIL")
	if support == "" {
		support = os.Getenv("EMAIL_USER")
	}

	body := "<p><strong>From:</strong> " + input.Name + " (" + input.Email + ")</p>" +
		"<p>" + input.Message + "</p>"
	if err := sendMail(support, "GreenShare Contact Form", body); err != nil {
		log.Printf("Failed to relay contact form from %s: %v", input.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Thank you for your message! We will get back to you soon.",
	})
}
