package postgres

import (
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/legalapp/case-management/internal/core/ports"
)

// dryRun returns a gorm handle that builds SQL without a live connection.
func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost", WithoutReturning: true}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestApplyClientFilter(t *testing.T) {
	db := dryRun(t)

	var rows []clientModel
	stmt := applyClientFilter(db, ports.ClientFilter{
		ActiveOnly: true,
		Email:      "a@x.com",
		ExcludeID:  4,
		Search:     "Dup",
	}).Order("id").Find(&rows).Statement

	sql := stmt.SQL.String()
	for _, want := range []string{"is_active", "email =", "id <>", "strpos(name", "ORDER BY id"} {
		if !strings.Contains(sql, want) {
			t.Errorf("expected %q in %s", want, sql)
		}
	}
	if len(stmt.Vars) != 6 {
		t.Fatalf("expected 6 bound vars, got %d: %v", len(stmt.Vars), stmt.Vars)
	}
}

func TestApplyClientFilter_Empty(t *testing.T) {
	db := dryRun(t)

	var rows []clientModel
	sql := applyClientFilter(db, ports.ClientFilter{}).Find(&rows).Statement.SQL.String()
	if strings.Contains(sql, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %s", sql)
	}
}
