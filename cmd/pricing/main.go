package main

import (
	"scrap-market/cmd/bootstrap"
	"scrap-market/cmd/bootstrap/components"
)

// @title           Pricing Oracle
// @version         1.0
// @description     Price quotes per scrap category and location.

// @BasePath  /api
// @schemes http https
func main() {
	bootstrap.Run("pricing", components.PricingModule)
}
