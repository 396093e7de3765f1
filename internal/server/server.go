// Package server exposes the declaration evaluator over a JSON HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/crickwise/declare-forecast/internal/config"
	"github.com/crickwise/declare-forecast/internal/evaluator"
	"github.com/crickwise/declare-forecast/internal/ground"
	"github.com/crickwise/declare-forecast/internal/match"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	presets       map[string]ground.Preset
	maxUploadSize int64
	defaultTrials int
	version       string
}

// NewHandler constructs the HTTP handler that serves the evaluation API. The
// preset table is injected so deployments (and tests) can extend or replace
// the built-in venues.
func NewHandler(logger *zap.Logger, presets map[string]ground.Preset, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if presets == nil {
		presets = ground.DefaultPresets()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		presets:       presets,
		maxUploadSize: cfg.UploadSizeBytes(),
		defaultTrials: cfg.DefaultTrials,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Evaluation API endpoint (JSON body)
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)

	// Evaluation API endpoint (YAML config upload)
	mux.HandleFunc("/api/evaluate/upload", h.handleEvaluateUpload)

	// Preset table for front ends
	mux.HandleFunc("/api/presets", h.handlePresets)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", metricsHandler())

	return mux
}

type evaluateRequest struct {
	Match  matchPayload `json:"match"`
	Trials int          `json:"trials"`
	Seed   int64        `json:"seed"`
}

type matchPayload struct {
	Ground                string    `json:"ground"`
	PresetKey             string    `json:"presetKey"`
	OversPerSession       int       `json:"oversPerSession"`
	SessionsRemaining     int       `json:"sessionsRemaining"`
	OversLeftThisSession  int       `json:"oversLeftThisSession"`
	CurrentLead           int       `json:"currentLead"`
	WicketsInHand         int       `json:"wicketsInHand"`
	ExtensionRunRate      float64   `json:"extensionRunRate"`
	ExtensionWicketChance float64   `json:"extensionWicketChance"`
	OppositionBatting     float64   `json:"oppositionBatting"`
	OwnBowling            float64   `json:"ownBowling"`
	PitchBowlingFactor    float64   `json:"pitchBowlingFactor"`
	RainChanceBySession   []float64 `json:"rainChanceBySession"`
	RiskAppetite          float64   `json:"riskAppetite"`
}

type evaluateResponse struct {
	RequestID string          `json:"requestId"`
	Preset    presetPayload   `json:"preset"`
	Options   []optionPayload `json:"options"`
	Duration  string          `json:"duration"`
}

type presetPayload struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	WicketHelp float64 `json:"wicketHelp"`
	ChaseEase  float64 `json:"chaseEase"`
}

type optionPayload struct {
	Label             string  `json:"label"`
	DeclareAfterOvers int     `json:"declareAfterOvers"`
	WinP              float64 `json:"winP"`
	DrawP             float64 `json:"drawP"`
	LossP             float64 `json:"lossP"`
	ExpectAddedRuns   float64 `json:"expectAddedRuns"`
	ExpectWicketsLost float64 `json:"expectWicketsLost"`
	MeanTarget        float64 `json:"meanTarget"`
	ExpectedMargin    float64 `json:"expectedMargin"`
	Utility           float64 `json:"utility"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var req evaluateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	h.runEvaluation(w, req.Match.context(), req.Trials, req.Seed, "server.handleEvaluate")
}

func (h *handler) handleEvaluateUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleEvaluateUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err))
		return
	}
	var conf config.Configuration
	if err := v.Unmarshal(&conf); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unable to decode config data, %v", err))
		return
	}
	conf.ApplyDefaults()

	trials := conf.Simulation.Trials
	seed := conf.Simulation.Seed
	h.runEvaluation(w, conf.MatchContext(), trials, seed, "server.handleEvaluateUpload")
}

func (h *handler) runEvaluation(w http.ResponseWriter, ctx match.Context, trials int, seed int64, op string) {
	start := time.Now()
	requestID := uuid.NewString()

	if trials <= 0 {
		trials = h.defaultTrials
	}

	options, preset, err := evaluator.Evaluate(h.logger, ctx, h.presets, trials, seed)
	if err != nil {
		evaluationsTotal.WithLabelValues("error").Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, match.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.logger.Warn("evaluation failed",
			zap.String("op", op),
			zap.String("requestId", requestID),
			zap.Error(err),
		)
		h.respondError(w, status, err.Error())
		return
	}

	duration := time.Since(start)
	evaluationsTotal.WithLabelValues("ok").Inc()
	evaluationDuration.Observe(duration.Seconds())
	optionsRanked.Set(float64(len(options)))

	h.logger.Info("evaluation completed",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.Int("options", len(options)),
		zap.Duration("duration", duration),
	)

	resp := evaluateResponse{
		RequestID: requestID,
		Preset: presetPayload{
			Key:        ctx.PresetKey,
			Name:       preset.Name,
			WicketHelp: preset.WicketHelp,
			ChaseEase:  preset.ChaseEase,
		},
		Options:  make([]optionPayload, 0, len(options)),
		Duration: duration.String(),
	}
	for _, option := range options {
		resp.Options = append(resp.Options, optionPayload{
			Label:             option.Label,
			DeclareAfterOvers: option.DeclareAfterOvers,
			WinP:              option.WinP,
			DrawP:             option.DrawP,
			LossP:             option.LossP,
			ExpectAddedRuns:   option.ExpectAddedRuns,
			ExpectWicketsLost: option.ExpectWicketsLost,
			MeanTarget:        option.MeanTarget,
			ExpectedMargin:    option.ExpectedMargin,
			Utility:           option.Utility,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	keys := make([]string, 0, len(h.presets))
	for key := range h.presets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	payload := make([]presetPayload, 0, len(keys))
	for _, key := range keys {
		preset := h.presets[key]
		payload = append(payload, presetPayload{
			Key:        key,
			Name:       preset.Name,
			WicketHelp: preset.WicketHelp,
			ChaseEase:  preset.ChaseEase,
		})
	}

	h.writeJSON(w, http.StatusOK, payload)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (p matchPayload) context() match.Context {
	return match.Context{
		Ground:                p.Ground,
		PresetKey:             p.PresetKey,
		OversPerSession:       p.OversPerSession,
		SessionsRemaining:     p.SessionsRemaining,
		OversLeftThisSession:  p.OversLeftThisSession,
		CurrentLead:           p.CurrentLead,
		WicketsInHand:         p.WicketsInHand,
		ExtensionRunRate:      p.ExtensionRunRate,
		ExtensionWicketChance: p.ExtensionWicketChance,
		OppositionBatting:     p.OppositionBatting,
		OwnBowling:            p.OwnBowling,
		PitchBowlingFactor:    p.PitchBowlingFactor,
		RainChanceBySession:   p.RainChanceBySession,
		RiskAppetite:          p.RiskAppetite,
	}
}
