package api

import (
	"bytes"
	"encoding/json"
)

// envelope is the wrapped list shape: {"data": [...]}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// UnwrapList decodes a list body that may be a bare array or an envelope.
// Any other shape, including null, {} and malformed JSON, yields an empty
// non-nil slice.
func UnwrapList[T any](raw json.RawMessage) []T {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return []T{}
	}

	if body[0] == '{' {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return []T{}
		}
		body = bytes.TrimSpace(env.Data)
	}

	if len(body) == 0 || body[0] != '[' {
		return []T{}
	}

	list := make([]T, 0)
	if err := json.Unmarshal(body, &list); err != nil {
		return []T{}
	}
	return list
}
