package main

import (
	"log"

	"go.uber.org/zap"

	"tpvcomida/internal/config"
	"tpvcomida/internal/logging"
	"tpvcomida/internal/repository"
	"tpvcomida/internal/store"
)

// The GUI shell owns the interaction loop; launching the binary directly
// boots the data layer and reports what it found.
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	st := store.New(logger)

	users := repository.NewUsers(st, logger)
	products := repository.NewProducts(st, logger)
	customers := repository.NewCustomers(st, logger)
	orders := repository.NewOrders(st, customers, logger)

	linked := 0
	for _, o := range orders.All() {
		if o.Customer != nil {
			linked++
		}
	}

	logger.Info("data layer ready",
		zap.String("environment", cfg.Environment),
		zap.Int("users", len(users.All())),
		zap.Int("products", len(products.All())),
		zap.Int("customers", len(customers.All())),
		zap.Int("orders", len(orders.All())),
		zap.Int("linked_orders", linked))
}
