package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// dryRunDB monta um gorm que só gera SQL, sem conexão, e captura cada
// statement de consulta produzido.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	var captured []string
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = append(captured, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register capture callback: %v", err)
	}

	return db, &captured
}

// A checagem de colisão trava linhas concretas: count(*) com FOR UPDATE
// é rejeitado pelo Postgres (SQLSTATE 0A000).
func TestHasConfirmedAtLocksRowsWithoutAggregate(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewScheduleGormRepository(db)

	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	if _, err := repo.HasConfirmedAt(context.Background(), 1, start); err != nil {
		t.Fatalf("HasConfirmedAt: %v", err)
	}

	if len(*captured) == 0 {
		t.Fatalf("nenhum statement capturado")
	}

	sql := strings.ToLower((*captured)[len(*captured)-1])
	if strings.Contains(sql, "count(") {
		t.Fatalf("consulta usa agregado com lock: %s", sql)
	}
	if !strings.Contains(sql, "for update") {
		t.Fatalf("consulta perdeu o lock de linha: %s", sql)
	}
	if !strings.Contains(sql, "limit") {
		t.Fatalf("consulta sem limite de linha: %s", sql)
	}
}
