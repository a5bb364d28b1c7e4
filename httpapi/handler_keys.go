package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/LdDl/rsapss-api/pss"
)

// HandleCreateKeys Generate a fresh RSA-2048 key pair
// @Summary Generate key pair
// @Description Returns an unencrypted PKCS#8 private key and a SubjectPublicKeyInfo public key, both PEM encoded. Nothing is stored server side.
// @Tags Keys
// @Produce json
// @Success 200 {object} httpapi.KeysResponse
// @Failure 405 {object} codes.Error405
// @Failure 500 {object} codes.Error500
// @Failure 503 {object} codes.Error503
// @Router /api/create-keys [POST]
func (api *API) HandleCreateKeys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	kp, err := api.generateKeyPair(r.Context())
	if err != nil {
		if errors.Is(err, pss.ErrGeneration) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusServiceUnavailable, "key generation cancelled: "+err.Error())
		return
	}

	slog.Info("key pair generated", "bits", pss.KeyBits)

	writeJSON(w, http.StatusOK, KeysResponse{
		PrivateKey: string(kp.PrivateKey),
		PublicKey:  string(kp.PublicKey),
	})
}

// generateKeyPair waits for a free key generation slot. Prime search is CPU bound,
// so the number of parallel generations is bounded by Config.KeygenWorkers.
func (api *API) generateKeyPair(ctx context.Context) (*pss.KeyPair, error) {
	if err := api.keygen.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer api.keygen.Release(1)
	return pss.GenerateKeyPair()
}
