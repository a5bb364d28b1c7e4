package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Form field names, primary name first, then aliases sent by the web client
var (
	fieldsData       = []string{"file", "dataFile"}
	fieldsPrivateKey = []string{"private_key", "privateKey"}
	fieldsPublicKey  = []string{"public_key", "publicKey"}
	fieldsSignature  = []string{"signature", "signatureFile"}
	fieldsHash       = []string{"hash", "hashFile"}
)

// errMissingFields lists the primary names of absent fields
type errMissingFields []string

func (e errMissingFields) Error() string {
	return "missing files: " + strings.Join(e, ", ")
}

// parseUpload limits the body and parses the multipart form.
// A non-multipart request is treated as an empty form, so every field is reported missing.
func (api *API) parseUpload(w http.ResponseWriter, r *http.Request) (*multipart.Form, int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, api.maxUploadSize)

	if err := r.ParseMultipartForm(api.maxUploadSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return &multipart.Form{}, 0, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("upload exceeds %d bytes", maxErr.Limit)
		}
		return nil, http.StatusBadRequest, fmt.Errorf("failed to parse form: %w", err)
	}
	return r.MultipartForm, 0, nil
}

// readFields reads each field group from the form. A field may be an uploaded file or
// a plain text value; an empty upload still counts as present.
func readFields(form *multipart.Form, groups ...[]string) ([][]byte, error) {
	out := make([][]byte, len(groups))
	var missing errMissingFields
	for i, names := range groups {
		data, ok, err := readField(form, names)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, names[0])
			continue
		}
		out[i] = data
	}
	if len(missing) > 0 {
		return nil, missing
	}
	return out, nil
}

func readField(form *multipart.Form, names []string) ([]byte, bool, error) {
	for _, name := range names {
		if headers := form.File[name]; len(headers) > 0 {
			file, err := headers[0].Open()
			if err != nil {
				return nil, false, fmt.Errorf("failed to open %s: %w", name, err)
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return nil, false, fmt.Errorf("failed to read %s: %w", name, err)
			}
			return data, true, nil
		}
		if values := form.Value[name]; len(values) > 0 {
			return []byte(values[0]), true, nil
		}
	}
	return nil, false, nil
}
