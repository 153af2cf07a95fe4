package main

import (
	"scrap-market/cmd/bootstrap"
	"scrap-market/cmd/bootstrap/components"
)

// @title           Identity Authority
// @version         1.0
// @description     Registration, login and token verification for the scrap market.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	bootstrap.Run("identity",
		bootstrap.JWTModule,
		components.IdentityModule,
	)
}
