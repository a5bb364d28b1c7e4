package main

import (
	"encoding/hex"
	"log/slog"
	"os"

	"github.com/LdDl/rsapss-api/pss"
)

const message = "hello world"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	kp, err := pss.GenerateKeyPair()
	if err != nil {
		slog.Error("failed to generate key pair", "error", err)
		os.Exit(1)
	}
	slog.Info("key pair generated", "bits", pss.KeyBits)

	res, err := pss.SignDigest([]byte(message), kp.PrivateKey)
	if err != nil {
		slog.Error("failed to sign", "error", err)
		os.Exit(1)
	}
	slog.Info("message signed",
		"message", message,
		"hash", hex.EncodeToString(res.Hash),
		"signature_bytes", len(res.Signature),
	)

	outcome, err := pss.VerifySignature(res.Signature, res.Hash, kp.PublicKey)
	if err != nil {
		slog.Error("failed to verify", "error", err)
		os.Exit(1)
	}
	slog.Info("signature checked", "outcome", outcome.String())

	// A single flipped bit in the signature must not verify
	res.Signature[len(res.Signature)-1] ^= 0x01
	outcome, err = pss.VerifySignature(res.Signature, res.Hash, kp.PublicKey)
	if err != nil {
		slog.Error("failed to verify", "error", err)
		os.Exit(1)
	}
	slog.Info("tampered signature checked", "outcome", outcome.String())
}
