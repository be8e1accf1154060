package postgres

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsDuplicateColumn(t *testing.T) {
	t.Run("matches 42701", func(t *testing.T) {
		err := &pq.Error{Code: "42701", Message: `column "goals" of relation "player_statistics" already exists`}
		if !isDuplicateColumn(err) {
			t.Fatalf("expected true for duplicate column error")
		}
	})

	t.Run("matches wrapped error", func(t *testing.T) {
		err := fmt.Errorf("add column: %w", &pq.Error{Code: "42701"})
		if !isDuplicateColumn(err) {
			t.Fatalf("expected true for wrapped duplicate column error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isDuplicateColumn(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table error")
		}
		if isDuplicateColumn(fakeErr("pq: column already exists")) {
			t.Fatalf("expected false for non-pq error")
		}
	})
}

func TestIsUndefinedTable(t *testing.T) {
	if !isUndefinedTable(&pq.Error{Code: "42P01"}) {
		t.Fatalf("expected true for 42P01")
	}
	if isUndefinedTable(nil) {
		t.Fatalf("expected false for nil")
	}
}

func TestIsUndefinedColumn(t *testing.T) {
	if !isUndefinedColumn(&pq.Error{Code: "42703"}) {
		t.Fatalf("expected true for 42703")
	}
	if isUndefinedColumn(&pq.Error{Code: "42701"}) {
		t.Fatalf("expected false for 42701")
	}
}

func TestQuoteIdents(t *testing.T) {
	got := quoteIdents([]string{"player_id", "order"})
	if len(got) != 2 || got[0] != `"player_id"` || got[1] != `"order"` {
		t.Fatalf("unexpected quoted identifiers: %v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
