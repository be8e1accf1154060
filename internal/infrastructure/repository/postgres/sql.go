package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeDuplicateColumn pq.ErrorCode = "42701"
	codeUndefinedTable  pq.ErrorCode = "42P01"
	codeUndefinedColumn pq.ErrorCode = "42703"
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isDuplicateColumn(err error) bool {
	return pqCode(err) == codeDuplicateColumn
}

func isUndefinedTable(err error) bool {
	return pqCode(err) == codeUndefinedTable
}

func isUndefinedColumn(err error) bool {
	return pqCode(err) == codeUndefinedColumn
}

func quoteIdents(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, pq.QuoteIdentifier(name))
	}
	return out
}
