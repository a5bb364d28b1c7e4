package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/LdDl/rsapss-api/pss"
)

const invalidSignatureMessage = "Invalid signature"

// HandleVerify Verify a signature against a hash
// @Summary Verify signature
// @Description Verifies a hex encoded RSASSA-PSS signature over a hex encoded SHA-256 hash with a SubjectPublicKeyInfo PEM public key. A mismatch is reported as status "invalid", malformed payloads and unparseable keys as plain errors.
// @Tags Signing
// @Accept multipart/form-data
// @Produce json
// @Param signature formData file true "Hex encoded signature"
// @Param hash formData file true "Hex encoded SHA-256 hash"
// @Param public_key formData file true "PEM public key (alias: publicKey)"
// @Success 200 {object} codes.Valid200
// @Failure 400 {object} codes.Invalid400
// @Failure 405 {object} codes.Error405
// @Failure 413 {object} codes.Error413
// @Failure 500 {object} codes.Error500
// @Router /api/verify [POST]
func (api *API) HandleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	form, status, err := api.parseUpload(w, r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	fields, err := readFields(form, fieldsSignature, fieldsHash, fieldsPublicKey)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	signatureHex, hashHex, publicKeyPEM := fields[0], fields[1], fields[2]

	outcome, err := pss.VerifyHex(signatureHex, hashHex, publicKeyPEM)
	if err != nil {
		switch {
		case errors.Is(err, pss.ErrMalformedInput), errors.Is(err, pss.ErrKeyParse):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	slog.Info("signature verified", "outcome", outcome.String())

	switch outcome {
	case pss.Valid:
		writeJSON(w, http.StatusOK, VerifyResponse{Status: outcome.String()})
	default:
		writeJSON(w, http.StatusBadRequest, VerifyResponse{
			Status: pss.Invalid.String(),
			Error:  invalidSignatureMessage,
		})
	}
}
