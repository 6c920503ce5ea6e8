package handlers

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"classic-cipher-backend/audio"
	"classic-cipher-backend/logger"
	"classic-cipher-backend/metrics"
	"classic-cipher-backend/models"
	"classic-cipher-backend/stego"

	"github.com/gin-gonic/gin"
)

const operationEmbed = "embed"

type StegoHandler struct {
	log            logger.Logger
	metrics        *metrics.Metrics
	maxUploadBytes int64
}

func NewStegoHandler(log logger.Logger, m *metrics.Metrics, maxUploadMB int) *StegoHandler {
	return &StegoHandler{
		log:            log.With("component", "stego_handler"),
		metrics:        m,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// readConfig collects the shared form fields of insert and extract
func readConfig(c *gin.Context) (*models.StegoConfig, error) {
	algorithm := strings.ToLower(strings.TrimSpace(c.PostForm("algorithm")))
	if algorithm == "" {
		return nil, fmt.Errorf("algorithm is required")
	}
	return &models.StegoConfig{
		Algorithm:      algorithm,
		Key:            c.PostForm("key"),
		UseRandomStart: c.PostForm("use_random_start") == "true",
	}, nil
}

// readWAV loads the named multipart file and decodes it
func readWAV(c *gin.Context, field string) (string, []int, *models.AudioMetadata, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%s is required", field)
	}
	defer file.Close()

	if !isValidWAVFile(header.Filename) {
		return "", nil, nil, fmt.Errorf("invalid audio file format. Only WAV files are supported")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	samples, metadata, err := audio.DecodeWAV(data)
	if err != nil {
		return "", nil, nil, err
	}
	return header.Filename, samples, metadata, nil
}

func (h *StegoHandler) InsertMessage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	config, err := readConfig(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{Success: false, Message: err.Error()})
		return
	}

	message := c.PostForm("message")
	if message == "" {
		c.JSON(http.StatusBadRequest, models.StegoResponse{Success: false, Message: "Message is required"})
		return
	}

	filename, samples, metadata, err := readWAV(c, "audio_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{Success: false, Message: err.Error()})
		return
	}

	lsb := stego.NewLSBSteganography(config)
	start := time.Now()
	stegoSamples, _, err := lsb.Embed(samples, message)
	h.metrics.Observe(config.Algorithm, operationEmbed, time.Since(start), err)
	if err != nil {
		c.JSON(stegoStatusFor(err), models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to embed message: %v", err),
		})
		return
	}

	stegoAudio, err := audio.EncodeWAV(stegoSamples, metadata)
	if err != nil {
		h.log.Error("failed to encode stego WAV", "error", err)
		c.JSON(http.StatusInternalServerError, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to encode WAV: %v", err),
		})
		return
	}

	psnr := audio.CalculatePSNR(samples, stegoSamples, metadata.BitDepth)
	h.log.Debug("message embedded", "algorithm", config.Algorithm, "samples", len(samples), "psnr", psnr)

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	outputFilename := fmt.Sprintf("%s_stego.wav", baseFilename)

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputFilename))
	c.Header("X-Stego-Message", "Ciphertext embedded in PCM sample LSBs")
	c.Header("X-Stego-Capacity", fmt.Sprintf("%d", lsb.Capacity(samples)))
	c.Header("X-Stego-PSNR", formatPSNR(psnr))

	c.Data(http.StatusOK, "audio/wav", stegoAudio)
}

func (h *StegoHandler) ExtractMessage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.ExtractResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	config, err := readConfig(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ExtractResponse{Success: false, Message: err.Error()})
		return
	}

	_, samples, _, err := readWAV(c, "stego_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ExtractResponse{Success: false, Message: err.Error()})
		return
	}

	ciphertext, plaintext, err := stego.NewLSBSteganography(config).Extract(samples)
	if err != nil {
		c.JSON(stegoStatusFor(err), models.ExtractResponse{
			Success:   false,
			Message:   fmt.Sprintf("Failed to extract message: %v", err),
			Algorithm: config.Algorithm,
		})
		return
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		Success:    true,
		Message:    "Message extracted",
		Algorithm:  config.Algorithm,
		Ciphertext: ciphertext,
		Plaintext:  plaintext,
	})
}

func stegoStatusFor(err error) int {
	if errors.Is(err, stego.ErrCapacityExceeded) || errors.Is(err, stego.ErrNoMessage) {
		return http.StatusUnprocessableEntity
	}
	return statusFor(err)
}

func formatPSNR(psnr float64) string {
	if math.IsInf(psnr, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", psnr)
}

func isValidWAVFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".wav"
}
