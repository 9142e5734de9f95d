// Package relay forwards API calls from the browser origin to the upstream
// EcoPay API.
package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ecopay/ecopay/pkg/clients"
	"github.com/ecopay/ecopay/pkg/utils"
	"go.uber.org/zap"
)

var emptyObject = []byte("{}")

type Relay struct {
	upstream string
	client   clients.HTTPClientI
}

func New(upstream string, client clients.HTTPClientI) *Relay {
	return &Relay{
		upstream: strings.TrimRight(upstream, "/"),
		client:   client,
	}
}

// ServeHTTP answers every request with the upstream status and JSON body.
func (rl *Relay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := rl.upstream + UpstreamPath(r.URL.Path)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	body, err := forwardBody(r)
	if err != nil {
		zap.L().Error("failed to read request body", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		zap.L().Error("failed to build upstream request", zap.String("target", target), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", r.Header.Get("Authorization"))

	resp, err := rl.client.Do(req)
	if err != nil {
		zap.L().Error("upstream request failed", zap.String("target", target), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Warn("failed to close upstream body", zap.Error(errors.Join(err, clients.ErrFailedCloseResponseBody)))
		}
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.L().Error("failed to read upstream body", zap.String("target", target), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !json.Valid(payload) {
		payload = emptyObject
	}

	zap.L().Debug("relayed request",
		zap.String("method", r.Method),
		zap.String("target", target),
		zap.Int("status", resp.StatusCode),
	)
	utils.RespondWithRaw(w, resp.StatusCode, payload)
}

// UpstreamPath drops the leading "proxy-api" or "api" segment.
func UpstreamPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	if segment == "proxy-api" || segment == "api" {
		return "/" + rest
	}
	return "/" + trimmed
}

func forwardBody(r *http.Request) (io.Reader, error) {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return http.NoBody, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	var decoded any
	if len(raw) == 0 || json.Unmarshal(raw, &decoded) != nil || empty(decoded) {
		return http.NoBody, nil
	}
	encoded, err := json.Marshal(decoded)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(encoded), nil
}

// empty reports JSON values that carry no payload: null, false, 0 and "".
func empty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}
