// Package testutil reúne helpers compartilhados pelos testes dos pacotes internos.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/consultorio-scheduler/internal/db"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/logging"
)

// DiscardLogger descarta toda saída de log.
func DiscardLogger() *slog.Logger {
	return logging.NewWithWriter(io.Discard, "error")
}

// NewTestDB abre um sqlite novo em t.TempDir() pelo mesmo caminho da produção.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DBUrl: filepath.Join(t.TempDir(), "test.db")}
	db, err := dbpkg.Open(cfg, DiscardLogger())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = dbpkg.Close(db) })
	return db
}
