package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/londailey6937/chapter-analysis/internal/extractor"
	"github.com/londailey6937/chapter-analysis/internal/graph"
	"github.com/londailey6937/chapter-analysis/internal/library"
	"github.com/londailey6937/chapter-analysis/pkg/logger"
)

// GraphHandler exposes extraction without the evaluation layer, for callers
// that only need the concept graph (navigation, highlighting).
type GraphHandler struct {
	extractor *extractor.Extractor
}

func NewGraphHandler(ex *extractor.Extractor) *GraphHandler {
	return &GraphHandler{extractor: ex}
}

func (h *GraphHandler) HandleGraph(c *fiber.Ctx) error {
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

	lib, _ := resolveLibrary(&req)
	doc := &graph.Document{Text: req.Text, Sections: req.Sections}

	return c.JSON(h.extractor.Extract(doc, lib))
}

// HandleDomains lists the built-in domain libraries.
func (h *GraphHandler) HandleDomains(c *fiber.Ctx) error {
	domains := library.Domains()
	out := make([]fiber.Map, 0, len(domains))
	for _, name := range domains {
		lib, _ := library.Builtin(name)
		out = append(out, fiber.Map{
			"domain":       name,
			"concepts":     len(lib.Concepts),
			"disambiguate": lib.Disambiguate,
		})
	}
	return c.JSON(fiber.Map{"domains": out})
}
