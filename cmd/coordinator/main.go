package main

import (
	"scrap-market/cmd/bootstrap"
	"scrap-market/cmd/bootstrap/components"
)

// @title           Assignment Coordinator
// @version         1.0
// @description     Dealer claims, completions and admin views.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	bootstrap.Run("coordinator", components.CoordinatorModule)
}
