package pagination

import (
	"log/slog"
)

// LogParams logs a pagination request with structured fields.
func LogParams(logger *slog.Logger, requestID string, params Params) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"page", params.Page,
		"limit", params.Limit)
}

// LogMetadata logs the resolved pagination state of a response.
func LogMetadata(logger *slog.Logger, requestID string, m Metadata) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"page", m.Page,
		"limit", m.Limit,
		"offset", m.Offset,
		"total", m.Total,
		"total_pages", m.TotalPages,
		"has_next", m.HasNext)
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, requestID string, params Params, err error) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"page", params.Page,
		"limit", params.Limit,
		"error", err.Error())
}
