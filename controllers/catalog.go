package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gislain231/greenshare/fleet"
)

// Fleet is the upstream catalog client, wired in main.
var Fleet *fleet.Client

// GetVehicles serves the vehicle catalog in upstream order. Upstream
// failures degrade to the fixed sample list inside the client.
func GetVehicles(c *fiber.Ctx) error {
	return c.JSON(Fleet.Vehicles(c.UserContext()))
}

// GetDetailingServices serves the detailing catalog; upstream failures
// degrade to an empty list.
func GetDetailingServices(c *fiber.Ctx) error {
	return c.JSON(Fleet.Services(c.UserContext()))
}
