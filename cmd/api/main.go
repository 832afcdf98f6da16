package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barbertime/internal/config"
	dbpkg "github.com/BruksfildServices01/barbertime/internal/db"
	"github.com/BruksfildServices01/barbertime/internal/middleware"
	"github.com/BruksfildServices01/barbertime/internal/monitor"
	"github.com/BruksfildServices01/barbertime/internal/payments"
	"github.com/BruksfildServices01/barbertime/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Sem redis o resolver só perde o cache, não a correção.
		log.Printf("redis unavailable, availability cache disabled: %v", err)
		rdb = nil
	}

	var provider payments.Provider
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken, cfg.SubscriptionURL)
		if err != nil {
			log.Fatalf("failed to init mercadopago: %v", err)
		}
		provider = mp

		mon := monitor.NewSubscriptionMonitor(db, provider, cfg.MonitorInterval)
		go mon.Run(context.Background())
	} else {
		log.Println("MP_ACCESS_TOKEN not set; subscription monitor disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, provider, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
