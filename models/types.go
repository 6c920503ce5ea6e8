// Package models contain needed models
package models

// CipherRequest represents a request to encrypt or decrypt text
type CipherRequest struct {
	Algorithm string `json:"algorithm" binding:"required,cipher_algorithm"`
	Text      string `json:"text"`
	Key       string `json:"key"`
}

// CipherResponse represents the result of a cipher operation
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Algorithm string `json:"algorithm,omitempty"`
	Result    string `json:"result,omitempty"`
	ElapsedUS int64  `json:"elapsed_us,omitempty"`
}

// SquareRequest asks for the Playfair key square of a keyword
type SquareRequest struct {
	Key string `json:"key"`
}

// SquareResponse carries the five rows of a Playfair key square
type SquareResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Rows    []string `json:"rows,omitempty"`
}

// BenchmarkRow is one line of the benchmark table
type BenchmarkRow struct {
	Algorithm string  `json:"algorithm"`
	Seconds   float64 `json:"seconds"`
	OpsPerSec float64 `json:"ops_per_sec"`
	Relative  float64 `json:"relative"`
}

// BenchmarkResponse represents the response of a benchmark run
type BenchmarkResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Text       string         `json:"text,omitempty"`
	Iterations int            `json:"iterations,omitempty"`
	Results    []BenchmarkRow `json:"results,omitempty"`
}

// StegoResponse represents the response after insertion
type StegoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExtractResponse represents the response after extracting a hidden message
type ExtractResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Algorithm  string `json:"algorithm,omitempty"`
	Ciphertext string `json:"ciphertext,omitempty"`
	Plaintext  string `json:"plaintext,omitempty"`
}

// AudioMetadata represents metadata about an audio file
type AudioMetadata struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   float64
	Samples    int
}

// StegoConfig represents configuration for steganography operations
type StegoConfig struct {
	Algorithm      string
	Key            string
	UseRandomStart bool
}
