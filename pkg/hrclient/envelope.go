package hrclient

import (
	"encoding/json"
	"strconv"
)

// Envelope es la envoltura uniforme de todas las respuestas del backend
type Envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// parseEnvelope es la única frontera de decodificación: una respuesta que no
// sea la envoltura esperada falla fuerte en lugar de degradar a defaults
func parseEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrMalformedResponse().WithCause(err)
	}
	return &env, nil
}

// DecodeData deserializa el campo data en out. Un data ausente o null es un
// error tipado, no un default silencioso.
func (e *Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return ErrMalformedResponse().WithDetail("reason", "envelope has no data field")
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return ErrMalformedResponse().WithCause(err)
	}
	return nil
}

// decodeCreatedID extrae el ID recién creado. El backend responde con tres
// formas documentadas: {"id": ...}, un string pelado o un número pelado.
// Cualquier otra forma es un error fuerte.
func decodeCreatedID(data json.RawMessage) (string, error) {
	if len(data) == 0 || string(data) == "null" {
		return "", ErrMalformedResponse().WithDetail("reason", "created resource has no id")
	}

	var ref struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &ref); err == nil && len(ref.ID) > 0 {
		return scalarID(ref.ID)
	}
	return scalarID(data)
}

func scalarID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, convErr := strconv.ParseFloat(n.String(), 64); convErr == nil {
			return n.String(), nil
		}
	}
	return "", ErrMalformedResponse().
		WithDetail("reason", "created id has an unexpected shape").
		WithDetail("data", string(raw))
}
