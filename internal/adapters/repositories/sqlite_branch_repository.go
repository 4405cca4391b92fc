package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipping-tools/internal/domain"
)

// SQLite-backed implementation of the BranchRepository port.
type SqliteBranchRepository struct{ DB *sql.DB }

func NewSqliteBranchRepository(db *sql.DB) *SqliteBranchRepository {
	return &SqliteBranchRepository{DB: db}
}

// Return all branches stored in the database, in load order.
func (s *SqliteBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite branch repository: DB is nil")
	}
	return listBranches(ctx, s.DB)
}

func listBranches(ctx context.Context, db *sql.DB) ([]domain.Branch, error) {
	query := `
	SELECT
		code,
		street,
		number,
		locality,
		province
	FROM branches
	ORDER BY position;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list branches: query branches table: %w", err)
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0, 512)
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.Code, &b.Street, &b.Number, &b.Locality, &b.Province); err != nil {
			return nil, fmt.Errorf("list branches: scan row: %w", err)
		}
		branches = append(branches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list branches: row iteration: %w", err)
	}

	return branches, nil
}
