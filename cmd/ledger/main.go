package main

import (
	"scrap-market/cmd/bootstrap"
	"scrap-market/cmd/bootstrap/components"
)

// @title           Request Ledger
// @version         1.0
// @description     Pickup requests and their status history.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	bootstrap.Run("ledger", components.LedgerModule)
}
