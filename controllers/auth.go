package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/gislain231/greenshare/db"
	"github.com/gislain231/greenshare/models"
	"github.com/gislain231/greenshare/utils"
)

// sendMail is swapped out in tests.
var sendMail = utils.SendEmail

type RegisterInput struct {
	UserType    string `json:"user_type"` // "customer" or "provider"
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type,omitempty"`
}

// Register handles customer and provider registration. Providers start
// unapproved and are picked up by the approval worker; they still get a
// provisional token right away so they can reach the setup flow.
func Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if input.UserType == "" {
		input.UserType = models.RoleCustomer
	}
	if input.UserType != models.RoleCustomer && input.UserType != models.RoleProvider {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user type",
		})
	}

	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	var role models.Role
	if err := db.DB.Where("name = ?", input.UserType).First(&role).Error; err != nil {
		log.Printf("Error finding role %q: %v", input.UserType, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to assign role. Role '" + input.UserType + "' not found.",
		})
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Phone:    input.Phone,
		RoleID:   role.ID,
		Role:     role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	user.Password = ""

	if input.UserType == models.RoleProvider {
		business := models.BusinessDetails{
			ProviderID:   user.ID,
			BusinessName: input.Name,
			Email:        input.Email,
			PhoneNumber:  input.Phone,
			ServiceType:  input.ServiceType,
			Approved:     false,
		}
		if err := db.DB.Create(&business).Error; err != nil {
			log.Printf("Error creating business details: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create business details",
			})
		}

		// Provisional session: providers can reach the setup flow
		// before approval, just not log back in.
		token, refresh, err := issueTokens(&user, &role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":      "Provider registration successful! Please wait for approval.",
			"user":         user,
			"business":     business,
			"token":        token,
			"refreshToken": refresh,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful! Welcome to GreenShare.",
		"user":    user,
	})
}

type LoginInput struct {
	UserType string `json:"user_type"` // "customer" or "provider"
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the role the caller selected. Providers
// are rejected until their business is approved.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.UserType == "" {
		input.UserType = models.RoleCustomer
	}

	var user models.User
	if db.DB.Preload("Role").Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": loginErrorMessage(input.UserType),
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": loginErrorMessage(input.UserType),
		})
	}

	if user.Role.Name != input.UserType {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": loginErrorMessage(input.UserType),
		})
	}

	if input.UserType == models.RoleProvider {
		var business models.BusinessDetails
		if err := db.DB.Where("provider_id = ?", user.ID).First(&business).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": loginErrorMessage(input.UserType),
			})
		}
		if !business.Approved {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Your business is not yet approved. Please wait for admin approval.",
			})
		}
	}

	token, refresh, err := issueTokens(&user, &user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	resp := fiber.Map{
		"token":        token,
		"refreshToken": refresh,
		"user": fiber.Map{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role.Name,
			"role_id": user.Role.ID,
		},
	}
	if user.Role.Name == models.RoleCustomer {
		// Clients reveal the providers navigation entry only after
		// a successful customer login.
		resp["show_providers_nav"] = true
	}
	return c.JSON(resp)
}

func loginErrorMessage(userType string) string {
	if userType == models.RoleProvider {
		return "Incorrect provider email or password."
	}
	return "Incorrect email or password. Please try again."
}

// issueTokens creates the HS256 access (24h) and refresh (7d) tokens.
func issueTokens(user *models.User, role *models.Role) (string, string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	claims := jwt.MapClaims{
		"id":      user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
		"role":    role,
		"role_id": user.RoleID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return token, refresh, nil
}

// GetUserProfile returns the current user's profile
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var userProfile models.User
	if err := db.DB.Preload("Role").Where("id = ?", userID).First(&userProfile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	// Don't send password
	userProfile.Password = ""

	return c.JSON(userProfile)
}

// Logout doesn't actually invalidate the token as JWTs are stateless
// For a more secure implementation, you'd need to use a token blacklist
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key"
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"email": claims["email"],
		"role":  claims["role"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims).SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}

// ForgotPassword generates a reset OTP and mails it to the account.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		// Don't reveal whether the account exists.
		return c.JSON(fiber.Map{
			"message": "If this email exists, a reset code has been sent",
		})
	}

	otp := utils.GenerateOTP()
	user.OTP = otp
	user.OTPExpiresAt = time.Now().Add(30 * time.Minute)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store reset code",
		})
	}

	body := "<p>Dear " + user.Name + ",</p>" +
		"<p>Your GreenShare password reset code is <strong>" + otp + "</strong>. " +
		"It expires in 30 minutes.</p>"
	if err := sendMail(user.Email, "GreenShare Password Reset", body); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
	}

	return c.JSON(fiber.Map{
		"message": "If this email exists, a reset code has been sent",
	})
}

// ResetPassword verifies the OTP and replaces the password.
func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	}

	input := new(ResetInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.OTP == "" || input.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid or expired reset code",
		})
	}
	if user.OTP == "" || user.OTP != input.OTP || user.OTPExpiresAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid or expired reset code",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user.Password = string(hashedPassword)
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update password",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Password updated successfully",
	})
}
