package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/bill-tracker/internal/models"
)

type BillRepository struct {
	db *pgxpool.Pool
}

// NewBillRepository создает репозиторий счетов.
func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{db: db}
}

// ListByUser возвращает счета пользователя, новые первыми.
func (r *BillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Bill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, amount_cents, category, due_date, paid_date, created_at, updated_at
		 FROM bills
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := make([]models.Bill, 0)
	for rows.Next() {
		var bill models.Bill
		var paidDate *time.Time

		err := rows.Scan(&bill.ID, &bill.UserID, &bill.Name, &bill.AmountCents, &bill.Category, &bill.DueDate, &paidDate, &bill.CreatedAt, &bill.UpdatedAt)
		if err != nil {
			return nil, err
		}

		bill.PaidDate = paidDate
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bills, nil
}

// GetByID возвращает счет пользователя по идентификатору.
func (r *BillRepository) GetByID(ctx context.Context, userID, billID uuid.UUID) (models.Bill, error) {
	var bill models.Bill
	var paidDate *time.Time

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, amount_cents, category, due_date, paid_date, created_at, updated_at
		 FROM bills
		 WHERE id = $1 AND user_id = $2`,
		billID, userID,
	).Scan(&bill.ID, &bill.UserID, &bill.Name, &bill.AmountCents, &bill.Category, &bill.DueDate, &paidDate, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bill, ErrNotFound
		}
		return bill, err
	}

	bill.PaidDate = paidDate
	return bill, nil
}

// Create создает новый счет без даты оплаты.
func (r *BillRepository) Create(ctx context.Context, userID uuid.UUID, name string, amountCents int64, category models.BillCategory, dueDate time.Time) (models.Bill, error) {
	var bill models.Bill
	var paidDate *time.Time

	err := r.db.QueryRow(ctx,
		`INSERT INTO bills (id, user_id, name, amount_cents, category, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, name, amount_cents, category, due_date, paid_date, created_at, updated_at`,
		uuid.New(), userID, name, amountCents, category, dueDate,
	).Scan(&bill.ID, &bill.UserID, &bill.Name, &bill.AmountCents, &bill.Category, &bill.DueDate, &paidDate, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		return bill, err
	}

	bill.PaidDate = paidDate
	return bill, nil
}

// Update обновляет изменяемые поля счета, не трогая paid_date.
func (r *BillRepository) Update(ctx context.Context, userID, billID uuid.UUID, name string, amountCents int64, category models.BillCategory, dueDate time.Time) (models.Bill, error) {
	var bill models.Bill
	var paidDate *time.Time

	err := r.db.QueryRow(ctx,
		`UPDATE bills
		 SET name = $3,
		     amount_cents = $4,
		     category = $5,
		     due_date = $6,
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, amount_cents, category, due_date, paid_date, created_at, updated_at`,
		billID, userID, name, amountCents, category, dueDate,
	).Scan(&bill.ID, &bill.UserID, &bill.Name, &bill.AmountCents, &bill.Category, &bill.DueDate, &paidDate, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bill, ErrNotFound
		}
		return bill, err
	}

	bill.PaidDate = paidDate
	return bill, nil
}

// Delete удаляет счет; отсутствующий id — не ошибка.
func (r *BillRepository) Delete(ctx context.Context, userID, billID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM bills
		 WHERE id = $1 AND user_id = $2`,
		billID, userID,
	)
	return err
}

// TogglePaid переключает оплаченность счета: снимает paid_date у оплаченного
// и ставит paidOn у неоплаченного одним запросом.
func (r *BillRepository) TogglePaid(ctx context.Context, userID, billID uuid.UUID, paidOn time.Time) (models.Bill, error) {
	var bill models.Bill
	var paidDate *time.Time

	err := r.db.QueryRow(ctx,
		`UPDATE bills
		 SET paid_date = CASE WHEN paid_date IS NULL THEN $3 ELSE NULL END,
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, amount_cents, category, due_date, paid_date, created_at, updated_at`,
		billID, userID, paidOn,
	).Scan(&bill.ID, &bill.UserID, &bill.Name, &bill.AmountCents, &bill.Category, &bill.DueDate, &paidDate, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bill, ErrNotFound
		}
		return bill, err
	}

	bill.PaidDate = paidDate
	return bill, nil
}

// DeleteAllByUser удаляет все счета пользователя (инструменты разработчика).
func (r *BillRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM bills
		 WHERE user_id = $1`,
		userID,
	)
	return err
}
