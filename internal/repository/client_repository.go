package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// ClientRepository defines persistence access for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

const clientColumns = `cliente_id, nombre, apellido, correo, telefono, fecha_registro, activo`

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clientes ORDER BY cliente_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := scanClient(rows, &client); err != nil {
			return nil, err
		}
		result = append(result, client)
	}
	return result, rows.Err()
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.fetchSingle(ctx, `SELECT `+clientColumns+` FROM clientes WHERE cliente_id=$1`, id)
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.fetchSingle(ctx, `SELECT `+clientColumns+` FROM clientes WHERE correo=$1`, email)
}

func (r *clientRepository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return r.fetchSingle(ctx, `SELECT `+clientColumns+` FROM clientes WHERE telefono=$1`, phone)
}

func (r *clientRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Client, error) {
	var client domain.Client
	if err := scanClient(r.pool.QueryRow(ctx, query, arg), &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clientes (nombre, apellido, correo, telefono, fecha_registro, activo)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING cliente_id`
	return r.pool.QueryRow(ctx, query,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Phone,
		client.RegisteredAt,
		client.Active,
	).Scan(&client.ID)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
        UPDATE clientes SET nombre=$1, apellido=$2, correo=$3, telefono=$4, fecha_registro=$5, activo=$6
        WHERE cliente_id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Phone,
		client.RegisteredAt,
		client.Active,
		client.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE clientes SET activo=$1 WHERE cliente_id=$2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanClient(row pgx.Row, client *domain.Client) error {
	return row.Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.Phone,
		&client.RegisteredAt,
		&client.Active,
	)
}
