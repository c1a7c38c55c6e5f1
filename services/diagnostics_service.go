package services

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"bakery-service/models"
)

const maxDiagnosticErrorLen = 80

// DatabaseInspector is the part of the storage handle diagnostics needs.
type DatabaseInspector interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// DiagnosticsService reports backend and storage connectivity.
type DiagnosticsService interface {
	Diagnose(ctx context.Context) *models.Diagnostics
}

type diagnosticsServiceImpl struct {
	db     DatabaseInspector
	logger *zap.Logger
}

// NewDiagnosticsService creates a DiagnosticsService. db is nil when no
// storage handle could be created at startup.
func NewDiagnosticsService(db DatabaseInspector, logger *zap.Logger) DiagnosticsService {
	return &diagnosticsServiceImpl{db: db, logger: logger}
}

// Diagnose never fails; storage errors end up in the Database field.
func (s *diagnosticsServiceImpl) Diagnose(ctx context.Context) *models.Diagnostics {
	d := &models.Diagnostics{
		Backend:      "✅ Running",
		Database:     "❌ Not Available",
		DatabaseURL:  "❌ Not Set",
		DatabaseName: "❌ Not Set",
		Collections:  []string{},
	}
	if s.db == nil {
		return d
	}

	d.Database = "✅ Connected & Working"
	d.DatabaseURL = "✅ Set"
	d.DatabaseName = s.db.Name()

	names, err := s.db.ListCollectionNames(ctx)
	if err != nil {
		s.logger.Warn("Database diagnostics failed", zap.Error(err))
		d.Database = "❌ Error: " + truncate(err.Error(), maxDiagnosticErrorLen)
		return d
	}
	if names != nil {
		d.Collections = names
	}
	return d
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
