package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// ProcedureRepository defines persistence access for treatment procedures.
type ProcedureRepository interface {
	List(ctx context.Context) ([]domain.Procedure, error)
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
	GetByName(ctx context.Context, name string) (*domain.Procedure, error)
	Create(ctx context.Context, procedure *domain.Procedure) error
	Update(ctx context.Context, procedure *domain.Procedure) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type procedureRepository struct {
	pool *pgxpool.Pool
}

// NewProcedureRepository returns a Postgres-backed implementation.
func NewProcedureRepository(pool *pgxpool.Pool) ProcedureRepository {
	return &procedureRepository{pool: pool}
}

const procedureColumns = `procedimiento_id, nombre, descripcion, precio, duracion_minutos, activo`

func (r *procedureRepository) List(ctx context.Context) ([]domain.Procedure, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+procedureColumns+` FROM procedimientos ORDER BY procedimiento_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Procedure
	for rows.Next() {
		var procedure domain.Procedure
		if err := scanProcedure(rows, &procedure); err != nil {
			return nil, err
		}
		result = append(result, procedure)
	}
	return result, rows.Err()
}

func (r *procedureRepository) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	return r.fetchSingle(ctx, `SELECT `+procedureColumns+` FROM procedimientos WHERE procedimiento_id=$1`, id)
}

func (r *procedureRepository) GetByName(ctx context.Context, name string) (*domain.Procedure, error) {
	return r.fetchSingle(ctx, `SELECT `+procedureColumns+` FROM procedimientos WHERE nombre=$1`, name)
}

func (r *procedureRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Procedure, error) {
	var procedure domain.Procedure
	if err := scanProcedure(r.pool.QueryRow(ctx, query, arg), &procedure); err != nil {
		return nil, err
	}
	return &procedure, nil
}

func (r *procedureRepository) Create(ctx context.Context, procedure *domain.Procedure) error {
	const query = `
        INSERT INTO procedimientos (nombre, descripcion, precio, duracion_minutos, activo)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING procedimiento_id`
	return r.pool.QueryRow(ctx, query,
		procedure.Name,
		procedure.Description,
		procedure.Price,
		procedure.DurationMinutes,
		procedure.Active,
	).Scan(&procedure.ID)
}

func (r *procedureRepository) Update(ctx context.Context, procedure *domain.Procedure) error {
	const query = `
        UPDATE procedimientos SET nombre=$1, descripcion=$2, precio=$3, duracion_minutos=$4, activo=$5
        WHERE procedimiento_id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		procedure.Name,
		procedure.Description,
		procedure.Price,
		procedure.DurationMinutes,
		procedure.Active,
		procedure.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *procedureRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE procedimientos SET activo=$1 WHERE procedimiento_id=$2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProcedure(row pgx.Row, procedure *domain.Procedure) error {
	return row.Scan(
		&procedure.ID,
		&procedure.Name,
		&procedure.Description,
		&procedure.Price,
		&procedure.DurationMinutes,
		&procedure.Active,
	)
}
