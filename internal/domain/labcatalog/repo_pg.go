package labcatalog

import (
	"context"
	"errors"

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

const testCols = `id, code, name, category, price, created_at, updated_at`

func scanTest(row pgx.Row) (*TestDefinition, error) {
	var t TestDefinition
	err := row.Scan(&t.ID, &t.Code, &t.Name, &t.Category, &t.Price, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) CreateTest(ctx context.Context, t *TestDefinition) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO test_definition (id, code, name, category, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		t.ID, t.Code, t.Name, t.Category, t.Price)
	return err
}

func (r *repoPG) GetTestByID(ctx context.Context, id uuid.UUID) (*TestDefinition, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+testCols+` FROM test_definition WHERE id = $1`, id)
	return scanTest(row)
}

func (r *repoPG) UpdateTest(ctx context.Context, t *TestDefinition) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE test_definition
		SET code = $2, name = $3, category = $4, price = $5, updated_at = now()
		WHERE id = $1`,
		t.ID, t.Code, t.Name, t.Category, t.Price)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTestNotFound
	}
	return nil
}

func (r *repoPG) DeleteTest(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM test_definition WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTestNotFound
	}
	return nil
}

func (r *repoPG) ListAllTests(ctx context.Context) ([]*TestDefinition, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testCols+` FROM test_definition ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*TestDefinition
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const packageCols = `id, code, name, price, member_test_ids, created_at, updated_at`

func scanPackage(row pgx.Row) (*PackageDefinition, error) {
	var p PackageDefinition
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.MemberTestIDs, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) CreatePackage(ctx context.Context, p *PackageDefinition) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO package_definition (id, code, name, price, member_test_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		p.ID, p.Code, p.Name, p.Price, p.MemberTestIDs)
	return err
}

func (r *repoPG) GetPackageByID(ctx context.Context, id uuid.UUID) (*PackageDefinition, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+packageCols+` FROM package_definition WHERE id = $1`, id)
	return scanPackage(row)
}

func (r *repoPG) UpdatePackage(ctx context.Context, p *PackageDefinition) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE package_definition
		SET code = $2, name = $3, price = $4, member_test_ids = $5, updated_at = now()
		WHERE id = $1`,
		p.ID, p.Code, p.Name, p.Price, p.MemberTestIDs)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *repoPG) DeletePackage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM package_definition WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *repoPG) ListAllPackages(ctx context.Context) ([]*PackageDefinition, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+packageCols+` FROM package_definition ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*PackageDefinition
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
