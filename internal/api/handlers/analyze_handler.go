package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/londailey6937/chapter-analysis/internal/analysis"
	"github.com/londailey6937/chapter-analysis/internal/cache/redis"
	"github.com/londailey6937/chapter-analysis/internal/graph"
	"github.com/londailey6937/chapter-analysis/internal/library"
	"github.com/londailey6937/chapter-analysis/internal/metrics"
	"github.com/londailey6937/chapter-analysis/pkg/logger"
	"github.com/londailey6937/chapter-analysis/pkg/utils"
)

type AnalyzeRequest struct {
	Text     string           `json:"text"`
	Sections []graph.Section  `json:"sections"`
	Domain   string           `json:"domain"`
	Library  *library.Library `json:"library"`
}

type AnalyzeHandler struct {
	analyzer *analysis.Analyzer
	cache    *redis.Client
}

func NewAnalyzeHandler(analyzer *analysis.Analyzer, cache *redis.Client) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		cache:    cache,
	}
}

// HandleAnalyze runs the full pipeline: extraction, principle evaluation and
// report aggregation. Reports for domain-library requests are cached by
// document hash; custom-library requests always recompute.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Document text is required",
		})
	}

	lib, mode := resolveLibrary(&req)
	cacheable := h.cache != nil && req.Library == nil
	cacheKey := utils.DocumentKey(req.Text, req.Domain)

	if cacheable {
		var cached analysis.Report
		hit, err := h.cache.GetReport(c.Context(), cacheKey, &cached)
		if err != nil {
			logger.Warn("Report cache lookup failed", zap.Error(err))
		} else if hit {
			metrics.CacheHits.Inc()
			return c.JSON(cached)
		}
		metrics.CacheMisses.Inc()
	}

	start := time.Now()
	doc := &graph.Document{Text: req.Text, Sections: req.Sections}
	report, err := h.analyzer.Analyze(c.Context(), doc, lib)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		logger.Error("Analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze document",
		})
	}

	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	metrics.AnalysisDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	metrics.ConceptsExtracted.Observe(float64(len(report.Graph.Concepts)))
	metrics.RelationshipsInferred.Observe(float64(len(report.Graph.Relationships)))
	metrics.OverallScore.Observe(report.OverallScore)
	metrics.DocumentWords.Observe(float64(report.Summary.WordCount))

	if cacheable {
		if err := h.cache.SetReport(c.Context(), cacheKey, report); err != nil {
			logger.Warn("Failed to cache report", zap.Error(err))
		}
	}

	return c.JSON(report)
}

// resolveLibrary picks the vocabulary for a request: a custom library wins,
// then a built-in domain; anything else falls back to discovery mode.
func resolveLibrary(req *AnalyzeRequest) (*library.Library, string) {
	if req.Library != nil {
		if req.Library.Valid() {
			return req.Library, "custom_library"
		}
		logger.Warn("Custom library has no usable concepts, using discovery mode")
		return nil, "discovery"
	}
	if req.Domain != "" {
		if lib, ok := library.Builtin(req.Domain); ok {
			return lib, "domain_library"
		}
		logger.Warn("Unknown domain, using discovery mode", zap.String("domain", req.Domain))
	}
	return nil, "discovery"
}
