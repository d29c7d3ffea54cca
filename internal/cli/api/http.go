package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "GopherMarket/internal/cli/repo/fs"
)

// DoJSON sends a JSON request with the given method. If token is non-empty,
// it is passed as a Bearer token in the Authorization header.
func DoJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodGet, url, nil, token)
}

// PersistAuthFromBody извлекает токен из JSON-ответа {"user":..., "token":...}
// и сохраняет его через файловое хранилище.
func PersistAuthFromBody(body []byte) error {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return err
	}
	if payload.Token == "" {
		return fmt.Errorf("no token in response")
	}
	store := fsrepo.AuthFSStore{}
	return store.Save(payload.Token)
}
