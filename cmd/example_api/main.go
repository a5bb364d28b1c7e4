package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// HTTP API server address
	APIServer = "http://localhost:8080"
)

// KeysResponse matches /api/create-keys response
type KeysResponse struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// SignResponse matches /api/sign response
type SignResponse struct {
	Signature string `json:"signature"`
	Hash      string `json:"hash"`
}

// VerifyResponse matches /api/verify response
type VerifyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

var client = &http.Client{Timeout: 30 * time.Second}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Step 1: Generate key pair via API
	slog.Info("generating key pair via API")
	var keys KeysResponse
	if err := postForm("/api/create-keys", nil, &keys); err != nil {
		slog.Error("failed to generate keys", "error", err)
		os.Exit(1)
	}
	slog.Info("key pair generated", "public_key_len", len(keys.PublicKey))

	// Step 2: Prepare document, a fresh nonce keeps each run distinct
	document := fmt.Sprintf("document %s signed at %s", uuid.New().String(), time.Now().UTC().Format(time.RFC3339))
	slog.Info("document prepared", "document", document)

	// Step 3: Sign document via API
	var signed SignResponse
	err := postForm("/api/sign", map[string][]byte{
		"file":        []byte(document),
		"private_key": []byte(keys.PrivateKey),
	}, &signed)
	if err != nil {
		slog.Error("failed to sign document", "error", err)
		os.Exit(1)
	}
	slog.Info("document signed", "hash", signed.Hash, "signature_hex_len", len(signed.Signature))

	// Step 4: Verify signature via API
	var verified VerifyResponse
	err = postForm("/api/verify", map[string][]byte{
		"signature":  []byte(signed.Signature),
		"hash":       []byte(signed.Hash),
		"public_key": []byte(keys.PublicKey),
	}, &verified)
	if err != nil {
		slog.Error("failed to verify signature", "error", err)
		os.Exit(1)
	}
	slog.Info("signature verified", "status", verified.Status)
}

// postForm sends files as multipart parts and decodes the JSON response into out.
// The verify endpoint answers 400 with a status body for a mismatching signature, that
// body is decoded as well.
func postForm(path string, files map[string][]byte, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := writer.CreateFormFile(name, name)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return fmt.Errorf("failed to write file data: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	resp, err := client.Post(APIServer+path, writer.FormDataContentType(), &buf)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp VerifyResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Status != "" {
				return fmt.Errorf("signature %s: %s", errResp.Status, errResp.Error)
			}
			return fmt.Errorf("API error: %s", errResp.Error)
		}
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
