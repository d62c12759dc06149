package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"speech2sense-go/internal/analyzer"
	"speech2sense-go/internal/classify"
	"speech2sense-go/internal/config"
	"speech2sense-go/internal/dataset"
	"speech2sense-go/internal/insight"
	"speech2sense-go/internal/logger"
	"speech2sense-go/internal/speech"
	"speech2sense-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "speech2sense-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	classifier, err := classify.NewLLMClient(classify.LLMConfig{
		URL:         cfg.LLM.URL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Timeout:     time.Duration(cfg.LLM.TimeoutSec) * time.Second,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		log.WithError(err).Fatal("classifier not configured")
	}

	var engine speech.Engine
	if cfg.Speech.TranscribeURL != "" {
		engine, err = speech.NewHTTPEngine(speech.HTTPConfig{
			TranscribeURL: cfg.Speech.TranscribeURL,
			DiarizeURL:    cfg.Speech.DiarizeURL,
			Timeout:       time.Duration(cfg.Speech.TimeoutSec) * time.Second,
		})
		if err != nil {
			log.WithError(err).Fatal("speech engine misconfigured")
		}
	} else {
		log.Warn("TRANSCRIBE_URL not set, audio analysis disabled")
	}

	eng := analyzer.New(classifier, engine, analyzer.Config{
		Scoring:       cfg.Scoring,
		Concurrency:   cfg.Analysis.Concurrency,
		TranscriptDir: cfg.Analysis.TranscriptDir,
	})

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	mux.Handle("/metrics", promhttp.Handler())

	// text conversation analysis
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		text, domain, err := readConversation(r)
		if err != nil {
			reqLog.WithError(err).Warn("bad request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		summary, err := eng.AnalyzeText(r.Context(), text, domain)
		writeAnalysis(w, reqLog, summary, err)
	})

	// audio conversation analysis (multipart file upload)
	mux.HandleFunc("/analyze/audio", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze_audio")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if engine == nil {
			http.Error(w, "audio analysis not configured", http.StatusServiceUnavailable)
			return
		}
		path, cleanup, err := saveUpload(r)
		if err != nil {
			reqLog.WithError(err).Warn("bad upload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer cleanup()
		summary, err := eng.AnalyzeAudio(r.Context(), path, r.FormValue("domain"))
		writeAnalysis(w, reqLog, summary, err)
	})

	// batch demo over a dataset spreadsheet
	mux.HandleFunc("/batch", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "batch")
		if cfg.Dataset == "" {
			http.Error(w, "DATASET_PATH not configured", http.StatusServiceUnavailable)
			return
		}
		records, err := dataset.Load(cfg.Dataset)
		if err != nil {
			reqLog.WithError(err).Error("dataset load error")
			http.Error(w, "dataset load error", http.StatusInternalServerError)
			return
		}
		limit := 5
		if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
			limit = l
		}
		if len(records) < limit {
			limit = len(records)
		}

		var summaries []types.ConversationSummary
		failed := 0
		for _, rec := range records[:limit] {
			reqLog.WithField("dataset_row", rec.ConversationID).Info("processing batch conversation")
			summary, err := eng.AnalyzeText(r.Context(), rec.Transcript, rec.Domain)
			if err != nil {
				reqLog.WithError(err).Warn("batch conversation failed")
				failed++
				continue
			}
			summaries = append(summaries, summary)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "success",
			"report":  dataset.Summarize(summaries, failed),
			"results": summaries,
		})
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server terminated")
	}
}

// readConversation accepts either a raw text body or a multipart/form "file"
// upload, plus an optional "domain" hint.
func readConversation(r *http.Request) (string, string, error) {
	domain := r.URL.Query().Get("domain")
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			return "", "", fmt.Errorf("parse form: %w", err)
		}
		if d := r.FormValue("domain"); d != "" {
			domain = d
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return "", "", fmt.Errorf("missing file field: %w", err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", "", err
		}
		return string(data), domain, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", "", err
	}
	return string(data), domain, nil
}

// saveUpload stores the uploaded audio in a temp file for the pipeline.
func saveUpload(r *http.Request) (string, func(), error) {
	if err := r.ParseMultipartForm(256 << 20); err != nil {
		return "", nil, fmt.Errorf("parse form: %w", err)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("missing file field: %w", err)
	}
	defer f.Close()

	tmp, err := os.CreateTemp("", "upload_*"+filepath.Ext(hdr.Filename))
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(tmp, f); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	tmp.Close()
	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

func writeAnalysis(w http.ResponseWriter, reqLog *logrus.Entry, summary types.ConversationSummary, err error) {
	if err != nil {
		reqLog.WithError(err).Warn("analysis returned error")
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"data":    summary,
		"insight": insight.Generate(summary),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
