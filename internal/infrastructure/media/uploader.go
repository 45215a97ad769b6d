// Package media uploads files to the external media host and returns durable
// retrieval URLs. The host speaks the common unsigned-upload REST shape:
// multipart POST of the file plus an upload preset, JSON reply carrying
// secure_url.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

var ErrUnconfigured = errors.New("media host unconfigured")

type Store interface {
	Upload(ctx context.Context, filename string, content []byte) (string, error)
}

type HTTPStore struct {
	uploadURL    string
	uploadPreset string
	client       *http.Client
}

func NewHTTPStore(uploadURL, uploadPreset string) *HTTPStore {
	return &HTTPStore{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadReply struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (s *HTTPStore) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	if s == nil || s.uploadURL == "" {
		return "", ErrUnconfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(content); err != nil {
		return "", err
	}
	if s.uploadPreset != "" {
		if err := mw.WriteField("upload_preset", s.uploadPreset); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("media host returned %d: %s", resp.StatusCode, string(b))
	}

	var reply uploadReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", err
	}
	if reply.SecureURL != "" {
		return reply.SecureURL, nil
	}
	if reply.URL != "" {
		return reply.URL, nil
	}
	return "", errors.New("media host reply missing url")
}
