package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB abre o dialeto Postgres sem conexão viva: sql.Open é preguiçoso e
// o ping automático fica desligado, então dá para inspecionar o SQL gerado.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)
	return db
}

// A varredura de conflito precisa trancar linhas concretas; FOR UPDATE sobre
// um agregado é rejeitado pelo Postgres (SQLSTATE 0A000).
func TestConflictScanLocksRowsWithoutAggregate(t *testing.T) {
	db := dryRunDB(t)

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	var ids []string
	stmt := conflictScanQuery(
		db.Session(&gorm.Session{DryRun: true}),
		"t1", "p1", start, end, "",
	).Find(&ids).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, `"id"`)
	assert.NotContains(t, strings.ToLower(sql), "count")
}

func TestConflictScanExcludesOwnAppointment(t *testing.T) {
	db := dryRunDB(t)

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	var ids []string
	stmt := conflictScanQuery(
		db.Session(&gorm.Session{DryRun: true}),
		"t1", "p1", start, end, "ap-1",
	).Find(&ids).Statement

	assert.Contains(t, stmt.SQL.String(), "id <> ")
	assert.Contains(t, stmt.Vars, "ap-1")
}
