package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"

	"jobportal_front/pkg/apperrors"
)

// one принимает сущность в обертке {"<key>": {...}} или без нее.
// Пустой объект и пустое тело оставляют Value нулевым.
type one[T any] struct {
	key   string
	Value T
}

func envelope[T any](key string) one[T] {
	return one[T]{key: key}
}

func (o *one[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	// обертка только если под ключом объект: у роли есть строковое поле role
	if raw, ok := fields[o.key]; ok {
		raw = bytes.TrimSpace(raw)
		if bytes.Equal(raw, []byte("null")) {
			return nil
		}
		if len(raw) > 0 && raw[0] == '{' {
			return json.Unmarshal(raw, &o.Value)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// missingEntity - 2xx без сущности; иначе в состояние попал бы пустой объект
func missingEntity(key, domain string) error {
	return apperrors.ErrRequestFailed(errors.New("response has no "+key), domain)
}
