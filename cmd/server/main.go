package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lenshq/lens-backend/server"
	"github.com/lenshq/lens-backend/utils"
	"github.com/lenshq/lens-backend/utils/dotenv"
	Flag "github.com/lenshq/lens-backend/utils/flag"
	Logger "github.com/lenshq/lens-backend/utils/log"
)

func main() {
	Flag.ParseFlags()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	Logger.InitLogger()

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatalf("fail to connect to database: %v", err)
	}
	utils.DatabaseSetupAndMigration(db)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	// Debug route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	AddRoutes(router, server.NewHandler(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	Logger.Log.Info("lens api server starts up")
	router.Run(":" + port)
}
