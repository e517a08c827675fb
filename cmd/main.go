// Package main is the entry point for the fulfillment-service application.
//
// @title           Bakery Fulfillment Service API
// @version         1.0.0
// @description     Delivery eligibility and scheduling engine for the bakery's
// @description     online storefront: postal zone fee quoting, minimum order
// @description     validation, preparation-window scheduling, delivery slot
// @description     catalogs, and the checkout workflow.
//
// @contact.name   API Support
// @contact.email  support@lavalbakery.example
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Staff bearer token issued by the identity service.
//
// @tag.name        Delivery
// @tag.description Zone quoting and scheduling operations
//
// @tag.name        Checkout
// @tag.description Checkout workflow endpoints
//
// @tag.name        Staff
// @tag.description Staff order review endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/lavalbakery/fulfillment-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/lavalbakery/fulfillment-service/config"
	"github.com/lavalbakery/fulfillment-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
