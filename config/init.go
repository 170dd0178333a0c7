package config

import (
	"fmt"
	"log"

	"failfund/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitApp() (*gin.Engine, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	return router, nil
}

func initComponents() error {
	LoadEnv()

	ConnectDB()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Startup{},
		&models.Discussion{},
		&models.Reply{},
		&models.Notification{},
		&models.Collaboration{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %v", err)
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// The list cache is an optimization only, keep serving from the DB.
		log.Printf("Warning: Redis unavailable, list cache disabled: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
	return nil
}
