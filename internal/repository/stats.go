package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/bill-tracker/internal/models"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

type Overview struct {
	TotalCount   int
	PaidCount    int
	OverdueCount int
	PendingCount int
	PaidCents    int64
	OverdueCents int64
	PendingCents int64
}

type CategorySpending struct {
	Category   models.BillCategory
	BillCount  int
	TotalCents int64
	PaidCents  int64
}

// NewStatsRepository создает репозиторий отчетов.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Overview считает количество и суммы счетов по статусам. Статус выводится
// в запросе из paid_date и due_date относительно переданной даты today,
// чтобы отчет не зависел от сохраненного статуса.
func (r *StatsRepository) Overview(ctx context.Context, userID uuid.UUID, today time.Time) (Overview, error) {
	var overview Overview

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE paid_date IS NOT NULL),
		        COUNT(*) FILTER (WHERE paid_date IS NULL AND due_date < $2),
		        COUNT(*) FILTER (WHERE paid_date IS NULL AND due_date >= $2),
		        COALESCE(SUM(amount_cents) FILTER (WHERE paid_date IS NOT NULL), 0),
		        COALESCE(SUM(amount_cents) FILTER (WHERE paid_date IS NULL AND due_date < $2), 0),
		        COALESCE(SUM(amount_cents) FILTER (WHERE paid_date IS NULL AND due_date >= $2), 0)
		 FROM bills
		 WHERE user_id = $1`,
		userID, today,
	).Scan(&overview.TotalCount, &overview.PaidCount, &overview.OverdueCount, &overview.PendingCount, &overview.PaidCents, &overview.OverdueCents, &overview.PendingCents)
	if err != nil {
		return Overview{}, err
	}

	return overview, nil
}

// SpendingByCategory возвращает суммы счетов по категориям.
func (r *StatsRepository) SpendingByCategory(ctx context.Context, userID uuid.UUID) ([]CategorySpending, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category,
		        COUNT(*),
		        COALESCE(SUM(amount_cents), 0),
		        COALESCE(SUM(amount_cents) FILTER (WHERE paid_date IS NOT NULL), 0)
		 FROM bills
		 WHERE user_id = $1
		 GROUP BY category
		 ORDER BY category`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spending := make([]CategorySpending, 0)
	for rows.Next() {
		var item CategorySpending

		err := rows.Scan(&item.Category, &item.BillCount, &item.TotalCents, &item.PaidCents)
		if err != nil {
			return nil, err
		}

		spending = append(spending, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return spending, nil
}
