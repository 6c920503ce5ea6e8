// Package handlers is made to handle requests
package handlers

import (
	"fmt"
	"strings"

	"classic-cipher-backend/config"
	"classic-cipher-backend/crypto"
	"classic-cipher-backend/logger"
	"classic-cipher-backend/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the cipher_algorithm binding tag to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("cipher_algorithm", func(fl validator.FieldLevel) bool {
		return crypto.IsAlgorithm(strings.ToLower(strings.TrimSpace(fl.Field().String())))
	})
}

func NewRouter(cfg *config.Config, log logger.Logger, m *metrics.Metrics) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), m.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"X-Stego-PSNR", "X-Stego-Message", "X-Stego-Capacity", "Content-Disposition"}
	if len(cfg.Server.AllowedOrigins) == 0 {
		// cors rejects credentials with a wildcard origin
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	cipherHandler := NewCipherHandler(log, m, cfg.Benchmark)
	stegoHandler := NewStegoHandler(log, m, cfg.Server.MaxUploadMB)

	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)
		api.GET("/ciphers", cipherHandler.ListCiphers)
		api.GET("/benchmark", cipherHandler.Benchmark)
		api.POST("/playfair/square", cipherHandler.PlayfairSquare)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.Encrypt)
			cipher.POST("/decrypt", cipherHandler.Decrypt)
		}

		stego := api.Group("/stego")
		{
			stego.POST("/insert", stegoHandler.InsertMessage)
			stego.POST("/extract", stegoHandler.ExtractMessage)
		}
	}

	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router, nil
}
