package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const orderCols = `id, visit_id, visit_number, order_date, total_amount, status, items, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var items []byte
	err := row.Scan(&o.ID, &o.VisitID, &o.VisitNumber, &o.OrderDate,
		&o.TotalAmount, &o.Status, &items, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]*Order, error) {
	defer rows.Close()
	var out []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO lab_order (id, visit_id, visit_number, order_date, total_amount, status, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		o.ID, o.VisitID, o.VisitNumber, o.OrderDate, o.TotalAmount, o.Status, items)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+orderCols+` FROM lab_order WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *repoPG) Update(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE lab_order
		SET visit_id = $2, visit_number = $3, order_date = $4,
		    total_amount = $5, status = $6, items = $7, updated_at = now()
		WHERE id = $1`,
		o.ID, o.VisitID, o.VisitNumber, o.OrderDate, o.TotalAmount, o.Status, items)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lab_order WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Order, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM lab_order`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderCols+` FROM lab_order
		ORDER BY order_date DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectOrders(rows)
	return out, total, err
}

func (r *repoPG) ListByVisitID(ctx context.Context, visitID uuid.UUID) ([]*Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderCols+` FROM lab_order
		WHERE visit_id = $1
		ORDER BY order_date`, visitID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *repoPG) ListByVisitNumber(ctx context.Context, visitNumber string) ([]*Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderCols+` FROM lab_order
		WHERE visit_number = $1
		ORDER BY order_date`, visitNumber)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *repoPG) ListByOrderDateRange(ctx context.Context, from, to time.Time) ([]*Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderCols+` FROM lab_order
		WHERE order_date >= $1 AND order_date <= $2
		ORDER BY order_date`, from, to)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}
