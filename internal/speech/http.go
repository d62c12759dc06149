package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"speech2sense-go/internal/logger"
	"speech2sense-go/internal/types"
)

// HTTPConfig points at the transcription and diarization services.
type HTTPConfig struct {
	TranscribeURL string
	DiarizeURL    string
	Timeout       time.Duration
	MaxRetryTime  time.Duration
}

// HTTPEngine implements Engine over plain multipart-upload HTTP services.
type HTTPEngine struct {
	cfg  HTTPConfig
	http *http.Client
	log  *logger.Logger
}

func NewHTTPEngine(cfg HTTPConfig) (*HTTPEngine, error) {
	if cfg.TranscribeURL == "" {
		return nil, errors.New("transcribe URL not set")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetryTime == 0 {
		cfg.MaxRetryTime = 2 * time.Minute
	}
	return &HTTPEngine{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger.New().WithComponent("speech"),
	}, nil
}

func (e *HTTPEngine) Transcribe(ctx context.Context, audioPath string) ([]types.TranscriptSegment, error) {
	var out struct {
		Segments []types.TranscriptSegment `json:"segments"`
	}
	url := strings.TrimRight(e.cfg.TranscribeURL, "/") + "/transcribe"
	if err := e.uploadJSON(ctx, url, audioPath, &out); err != nil {
		return nil, fmt.Errorf("transcription: %w", err)
	}
	e.log.WithField("segments", len(out.Segments)).Info("transcription completed")
	return out.Segments, nil
}

// Diarize returns the anonymous speaker intervals. A missing diarizer URL is
// not fatal: the aligner handles zero speaker segments with its unknown
// sentinel, so the conversation still gets analyzed.
func (e *HTTPEngine) Diarize(ctx context.Context, audioPath string) ([]types.SpeakerSegment, error) {
	if e.cfg.DiarizeURL == "" {
		e.log.Warn("diarizer not configured, returning no speaker segments")
		return nil, nil
	}
	var out struct {
		Segments []types.SpeakerSegment `json:"segments"`
	}
	url := strings.TrimRight(e.cfg.DiarizeURL, "/") + "/diarize"
	if err := e.uploadJSON(ctx, url, audioPath, &out); err != nil {
		return nil, fmt.Errorf("diarization: %w", err)
	}
	e.log.WithField("segments", len(out.Segments)).Info("diarization completed")
	return out.Segments, nil
}

// uploadJSON posts the audio file as multipart form data and decodes the
// JSON reply, retrying transient failures.
func (e *HTTPEngine) uploadJSON(ctx context.Context, url, audioPath string, target any) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = e.cfg.MaxRetryTime

	var lastErr error
	op := func() error {
		body, contentType, err := multipartFile(audioPath)
		if err != nil {
			return backoff.Permanent(err)
		}
		reqCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", contentType)

		resp, err := e.http.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		data, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: status=%d", resp.StatusCode)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("request rejected: status=%d body=%s", resp.StatusCode, data)
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(data, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %w", err)
			return lastErr
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return lastErr
	}
	return nil
}

func multipartFile(path string) (io.Reader, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &b, w.FormDataContentType(), nil
}
