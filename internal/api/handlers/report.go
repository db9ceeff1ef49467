package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/pkg/logger"
	"github.com/wonny/robosector/pkg/redis"
)

// errUnknownTicker marks a ticker absent from the latest report
var errUnknownTicker = errors.New("unknown ticker")

// ReportSource produces a fresh sector report; pipeline.Runner is the
// production implementation
type ReportSource interface {
	Run(ctx context.Context) (*contracts.SectorReport, error)
}

// ReportHandler serves the latest sector analysis report
// ⭐ SSOT: 리포트 API 핸들러는 이 구조체에서만
type ReportHandler struct {
	source ReportSource
	cache  *redis.Cache
	logger *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(source ReportSource, cache *redis.Cache, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		source: source,
		cache:  cache,
		logger: log,
	}
}

// latest returns the cached report, computing a fresh one on a miss.
// The runner caches its own result, so a cold start pays once.
func (h *ReportHandler) latest(ctx context.Context) (*contracts.SectorReport, error) {
	if h.cache == nil {
		return h.source.Run(ctx)
	}

	var report contracts.SectorReport
	err := h.cache.GetOrSet(ctx, redis.ReportKey(), &report, redis.TTLDaily, func() (interface{}, error) {
		return h.source.Run(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetSectorReport returns the full sector report
// GET /api/sector/report
func (h *ReportHandler) GetSectorReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.latest(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to produce sector report")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, report)
}

// GetSectorFlow returns the sector-level flow summary
// GET /api/sector/flow
func (h *ReportHandler) GetSectorFlow(w http.ResponseWriter, r *http.Request) {
	flowView, err := h.flowView(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to produce sector flow view")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, flowView)
}

// flowView caches the flow summary on its own key so it serves without
// unmarshalling the full report; the runner drops the key when a fresh
// report lands.
func (h *ReportHandler) flowView(ctx context.Context) (*contracts.SectorFlowSummary, error) {
	if h.cache == nil {
		report, err := h.latest(ctx)
		if err != nil {
			return nil, err
		}
		return &report.Flow, nil
	}

	var flowView contracts.SectorFlowSummary
	err := h.cache.GetOrSet(ctx, redis.FlowReportKey(), &flowView, redis.TTLDaily, func() (interface{}, error) {
		report, err := h.latest(ctx)
		if err != nil {
			return nil, err
		}
		return report.Flow, nil
	})
	if err != nil {
		return nil, err
	}
	return &flowView, nil
}

// stockResponse pairs the analysis and flow views of one stock
type stockResponse struct {
	Stock *contracts.StockAnalysisResult `json:"stock"`
	Flow  *contracts.FlowAnalysisResult  `json:"flow,omitempty"`
}

// GetStock returns the per-stock analysis for one ticker. Per-ticker
// views carry a short TTL instead of explicit invalidation since the
// key space is unbounded.
// GET /api/stocks/{ticker}
func (h *ReportHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := mux.Vars(r)["ticker"]

	var resp stockResponse
	var err error
	if h.cache == nil {
		resp, err = h.stockView(ctx, ticker)
	} else {
		err = h.cache.GetOrSet(ctx, redis.StockResultKey(ticker), &resp, redis.TTLShort, func() (interface{}, error) {
			return h.stockView(ctx, ticker)
		})
	}

	if errors.Is(err, errUnknownTicker) {
		writeError(w, http.StatusNotFound, "unknown ticker")
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("failed to produce stock view")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, resp)
}

func (h *ReportHandler) stockView(ctx context.Context, ticker string) (stockResponse, error) {
	report, err := h.latest(ctx)
	if err != nil {
		return stockResponse{}, err
	}

	stock := report.Stock(ticker)
	if stock == nil {
		return stockResponse{}, errUnknownTicker
	}

	resp := stockResponse{Stock: stock}
	for _, f := range report.Flows {
		if f.Ticker == ticker {
			resp.Flow = f
			break
		}
	}
	return resp, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
