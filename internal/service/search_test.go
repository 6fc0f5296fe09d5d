package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func TestSearchService_RecordValidation(t *testing.T) {
	svc := NewSearchService(db.NewRepository(nil), zap.NewNop())
	ctx := context.Background()

	if err := svc.Record(ctx, &models.SearchQuery{}); !db.IsValidation(err) {
		t.Errorf("Record() empty query error = %v, want ValidationError", err)
	}
	if err := svc.Record(ctx, &models.SearchQuery{
		Query: strings.Repeat("q", 501),
	}); !db.IsValidation(err) {
		t.Errorf("Record() long query error = %v, want ValidationError", err)
	}
}

func TestSearchService_RecordAppends(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := db.NewRepository(tx)
	svc := NewSearchService(repo, zap.NewNop())

	if err := svc.Record(ctx, &models.SearchQuery{Query: "solar tracker", ResultsCount: 3}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	rows, err := db.NewAnalyticsRepository(repo).ListSearchQueries(ctx, 10)
	if err != nil {
		t.Fatalf("ListSearchQueries() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Query != "solar tracker" {
		t.Errorf("ListSearchQueries() = %v, want the recorded query", rows)
	}
}
