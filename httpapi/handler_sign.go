package httpapi

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"

	"github.com/LdDl/rsapss-api/pss"
)

// HandleSign Hash and sign an uploaded file
// @Summary Sign file
// @Description Computes SHA-256 of the uploaded file and signs it with RSASSA-PSS (MGF1 SHA-256, maximum salt length). Signature and hash are returned as lowercase hex.
// @Tags Signing
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Data to sign (alias: dataFile)"
// @Param private_key formData file true "PKCS#8 PEM private key (alias: privateKey)"
// @Success 200 {object} httpapi.SignResponse
// @Failure 400 {object} codes.Error400
// @Failure 405 {object} codes.Error405
// @Failure 413 {object} codes.Error413
// @Failure 500 {object} codes.Error500
// @Router /api/sign [POST]
func (api *API) HandleSign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	form, status, err := api.parseUpload(w, r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	fields, err := readFields(form, fieldsData, fieldsPrivateKey)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, privateKeyPEM := fields[0], fields[1]

	res, err := pss.SignDigest(data, privateKeyPEM)
	if err != nil {
		if errors.Is(err, pss.ErrKeyParse) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hashHex := hex.EncodeToString(res.Hash)
	slog.Info("data signed",
		"data_len", len(data),
		"hash", hashHex,
		"signature_len", len(res.Signature),
	)

	writeJSON(w, http.StatusOK, SignResponse{
		Signature: hex.EncodeToString(res.Signature),
		Hash:      hashHex,
	})
}
