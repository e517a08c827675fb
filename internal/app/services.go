// Package app provides service initialization.
package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lavalbakery/fulfillment-service/config"
	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Registry    *service.ZoneRegistry
	Quotes      service.QuoteService
	Scheduler   service.Scheduler
	Eligibility service.EligibilityService
	Orders      service.OrderService
	Checkout    service.CheckoutService
	Clock       service.Clock
}

// InitializeServices initializes the fulfillment engine. The zone registry is
// validated at startup; a malformed zone table is a deploy error, not a
// runtime condition.
func InitializeServices(cfg config.ScheduleConfig, db *DatabaseComponents) *ServiceComponents {
	registry := service.MustNewZoneRegistry(service.DefaultZones())
	quotes := service.NewQuoteService(registry)
	scheduler := service.NewScheduler()
	eligibility := service.NewEligibilityService(quotes, scheduler)

	clock := bakeryClock(cfg.Timezone)

	var orders service.OrderService
	if db != nil {
		orders = service.NewOrderService(db.OrdersRepo)
	}

	checkout := service.NewCheckoutService(quotes, eligibility, orders,
		service.WithClock(clock))

	return &ServiceComponents{
		Registry:    registry,
		Quotes:      quotes,
		Scheduler:   scheduler,
		Eligibility: eligibility,
		Orders:      orders,
		Checkout:    checkout,
		Clock:       clock,
	}
}

// bakeryClock returns a clock pinned to the bakery's timezone so the noon
// cutoff and evening handoff rules are evaluated in local bakery time no
// matter where the service runs.
func bakeryClock(timezone string) service.Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", timezone).Msg("Unknown timezone, falling back to server local time")
		return time.Now
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}
