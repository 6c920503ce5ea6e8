package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"classic-cipher-backend/benchmark"
	"classic-cipher-backend/config"
	"classic-cipher-backend/crypto"
	"classic-cipher-backend/logger"
	"classic-cipher-backend/metrics"
	"classic-cipher-backend/models"

	"github.com/gin-gonic/gin"
)

const (
	operationEncrypt = "encrypt"
	operationDecrypt = "decrypt"

	maxBenchmarkIterations = 1_000_000
)

type CipherHandler struct {
	log     logger.Logger
	metrics *metrics.Metrics
	bench   config.BenchmarkConfig
}

func NewCipherHandler(log logger.Logger, m *metrics.Metrics, bench config.BenchmarkConfig) *CipherHandler {
	return &CipherHandler{
		log:     log.With("component", "cipher_handler"),
		metrics: m,
		bench:   bench,
	}
}

// statusFor maps caller mistakes to 400 and everything else to 500
func statusFor(err error) int {
	switch {
	case errors.Is(err, crypto.ErrInvalidKey),
		errors.Is(err, crypto.ErrInvalidCiphertext),
		errors.Is(err, crypto.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Classical cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) ListCiphers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ciphers": crypto.Algorithms(),
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.apply(c, operationEncrypt)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.apply(c, operationDecrypt)
}

func (h *CipherHandler) apply(c *gin.Context, operation string) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	cipher, err := crypto.New(req.Algorithm, req.Key)
	if err != nil {
		c.JSON(statusFor(err), models.CipherResponse{
			Success:   false,
			Message:   fmt.Sprintf("Invalid key: %v", err),
			Algorithm: req.Algorithm,
		})
		return
	}

	start := time.Now()
	var result string
	if operation == operationEncrypt {
		result, err = cipher.Encrypt(req.Text)
	} else {
		result, err = cipher.Decrypt(req.Text)
	}
	elapsed := time.Since(start)
	h.metrics.Observe(cipher.Name(), operation, elapsed, err)

	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.log.Error("cipher operation failed", "algorithm", cipher.Name(), "operation", operation, "error", err)
		}
		c.JSON(status, models.CipherResponse{
			Success:   false,
			Message:   fmt.Sprintf("Failed to %s: %v", operation, err),
			Algorithm: cipher.Name(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Message:   fmt.Sprintf("%s succeeded", operation),
		Algorithm: cipher.Name(),
		Result:    result,
		ElapsedUS: elapsed.Microseconds(),
	})
}

func (h *CipherHandler) PlayfairSquare(c *gin.Context) {
	var req models.SquareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.SquareResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.SquareResponse{
		Success: true,
		Message: "Key square generated",
		Rows:    crypto.NewPlayfair(req.Key).Square().Rows(),
	})
}

func (h *CipherHandler) Benchmark(c *gin.Context) {
	iterations := h.bench.Iterations
	if raw := c.Query("iterations"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxBenchmarkIterations {
			c.JSON(http.StatusBadRequest, models.BenchmarkResponse{
				Success: false,
				Message: fmt.Sprintf("Iterations must be between 1 and %d", maxBenchmarkIterations),
			})
			return
		}
		iterations = n
	}

	text := c.DefaultQuery("text", h.bench.Text)
	rows, err := benchmark.Run(benchmark.Config{Iterations: iterations, Text: text})
	if err != nil {
		h.log.Error("benchmark failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.BenchmarkResponse{
			Success: false,
			Message: fmt.Sprintf("Benchmark failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.BenchmarkResponse{
		Success:    true,
		Message:    "Benchmark completed",
		Text:       text,
		Iterations: iterations,
		Results:    rows,
	})
}
