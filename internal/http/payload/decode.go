package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

const maxBodyBytes = 1 << 20

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object, rejecting unknown
// fields, and validates it when it knows how.
func (Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	t, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}
	if err = t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}
