package consultation

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	SaveSummarySheet(ctx context.Context, sheet *SummarySheet) error
	ListSummarySheets(ctx context.Context, userID int64) ([]SummarySheet, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) SaveSummarySheet(ctx context.Context, sheet *SummarySheet) error {
	if sheet.CreatedAt.IsZero() {
		sheet.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO summary_sheets (user_id, symptoms, summary, severity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		sheet.UserID, sheet.Symptoms, sheet.Summary, sheet.Severity, sheet.CreatedAt).Scan(&sheet.ID)
}

func (r *postgresRepo) ListSummarySheets(ctx context.Context, userID int64) ([]SummarySheet, error) {
	query := `
		SELECT id, user_id, symptoms, summary, severity, created_at
		FROM summary_sheets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []SummarySheet
	for rows.Next() {
		var s SummarySheet
		if err := rows.Scan(&s.ID, &s.UserID, &s.Symptoms, &s.Summary, &s.Severity, &s.CreatedAt); err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, rows.Err()
}
