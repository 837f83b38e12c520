package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chapter_analysis_duration_seconds",
			Help:    "Document analysis duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"mode"},
	)

	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chapter_analysis_total",
			Help: "Total number of documents analyzed",
		},
		[]string{"status"},
	)

	ConceptsExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chapter_analysis_concepts_per_document",
			Help:    "Number of concepts extracted per document",
			Buckets: []float64{0, 5, 10, 20, 40, 60},
		},
	)

	RelationshipsInferred = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chapter_analysis_relationships_per_document",
			Help:    "Number of relationships inferred per document",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250},
		},
	)

	OverallScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chapter_analysis_overall_score",
			Help:    "Aggregated report scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	DocumentWords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chapter_analysis_document_words",
			Help:    "Word counts of analyzed documents",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000},
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chapter_analysis_cache_hits_total",
			Help: "Total report cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chapter_analysis_cache_misses_total",
			Help: "Total report cache misses",
		},
	)
)

func Init() {
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(ConceptsExtracted)
	prometheus.MustRegister(RelationshipsInferred)
	prometheus.MustRegister(OverallScore)
	prometheus.MustRegister(DocumentWords)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
