package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// Conditional-update sentinels: a concurrent caller flipped the used flag
// between the service's precondition check and the write.
var (
	ErrVoucherAlreadyUsed = errors.New("voucher already used")
	ErrVoucherNotUsed     = errors.New("voucher not used")
)

// VoucherRepository encapsulates voucher persistence. The lifecycle writes
// run the state change and its audit row in a single transaction, with the
// used-flag flip guarded by a conditional update.
type VoucherRepository interface {
	List(ctx context.Context) ([]domain.Voucher, error)
	GetByID(ctx context.Context, id int64) (*domain.Voucher, error)
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	ListActiveByClient(ctx context.Context, clientID int64) ([]domain.Voucher, error)
	ActiveExists(ctx context.Context, clientID, procedureID int64) (bool, error)
	CreateWithHistory(ctx context.Context, voucher *domain.Voucher, actorID int64) error
	MarkUsedWithHistory(ctx context.Context, id int64, usedAt time.Time, actorID int64) error
	RevertWithHistory(ctx context.Context, id int64, actorID int64) error
}

type voucherRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherRepository instantiates repository.
func NewVoucherRepository(pool *pgxpool.Pool) VoucherRepository {
	return &voucherRepository{pool: pool}
}

const voucherColumns = `bono_id, codigo, cliente_id, procedimiento_id, tipo_descuento,
               valor_descuento, fecha_creacion, fecha_expiracion, usado, fecha_uso`

func (r *voucherRepository) List(ctx context.Context) ([]domain.Voucher, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+voucherColumns+` FROM bonos ORDER BY bono_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVouchers(rows)
}

func (r *voucherRepository) GetByID(ctx context.Context, id int64) (*domain.Voucher, error) {
	var voucher domain.Voucher
	err := scanVoucher(r.pool.QueryRow(ctx, `SELECT `+voucherColumns+` FROM bonos WHERE bono_id=$1`, id), &voucher)
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// GetByCode resolves a voucher by its generated code, joined with its
// client and procedure for denormalized display.
func (r *voucherRepository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	const query = `
        SELECT b.bono_id, b.codigo, b.cliente_id, b.procedimiento_id, b.tipo_descuento,
               b.valor_descuento, b.fecha_creacion, b.fecha_expiracion, b.usado, b.fecha_uso,
               c.cliente_id, c.nombre, c.apellido, c.correo, c.telefono, c.fecha_registro, c.activo,
               p.procedimiento_id, p.nombre, p.descripcion, p.precio, p.duracion_minutos, p.activo
        FROM bonos b
        JOIN clientes c ON c.cliente_id = b.cliente_id
        JOIN procedimientos p ON p.procedimiento_id = b.procedimiento_id
        WHERE b.codigo=$1`

	var voucher domain.Voucher
	var client domain.Client
	var procedure domain.Procedure
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.ClientID,
		&voucher.ProcedureID,
		&voucher.DiscountType,
		&voucher.DiscountValue,
		&voucher.CreatedAt,
		&voucher.ExpiresAt,
		&voucher.Used,
		&voucher.UsedAt,
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.Phone,
		&client.RegisteredAt,
		&client.Active,
		&procedure.ID,
		&procedure.Name,
		&procedure.Description,
		&procedure.Price,
		&procedure.DurationMinutes,
		&procedure.Active,
	); err != nil {
		return nil, err
	}
	voucher.Client = &client
	voucher.Procedure = &procedure
	return &voucher, nil
}

func (r *voucherRepository) ListActiveByClient(ctx context.Context, clientID int64) ([]domain.Voucher, error) {
	const query = `
        SELECT ` + voucherColumns + `
        FROM bonos
        WHERE cliente_id=$1 AND usado = FALSE AND NOW() BETWEEN fecha_creacion AND fecha_expiracion
        ORDER BY bono_id`
	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVouchers(rows)
}

func (r *voucherRepository) ActiveExists(ctx context.Context, clientID, procedureID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM bonos
            WHERE cliente_id=$1 AND procedimiento_id=$2
              AND usado = FALSE
              AND NOW() BETWEEN fecha_creacion AND fecha_expiracion
        )`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, clientID, procedureID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateWithHistory inserts the voucher and its CREADO audit row in one
// transaction, re-checking the single-active-voucher predicate inside it.
func (r *voucherRepository) CreateWithHistory(ctx context.Context, voucher *domain.Voucher, actorID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		const check = `
            SELECT EXISTS (
                SELECT 1 FROM bonos
                WHERE cliente_id=$1 AND procedimiento_id=$2
                  AND usado = FALSE
                  AND NOW() BETWEEN fecha_creacion AND fecha_expiracion
            )`
		if err := tx.QueryRow(ctx, check, voucher.ClientID, voucher.ProcedureID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrActiveVoucherExists
		}

		const insert = `
            INSERT INTO bonos (codigo, cliente_id, procedimiento_id, tipo_descuento,
                               valor_descuento, fecha_creacion, fecha_expiracion, usado, fecha_uso)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            RETURNING bono_id`
		if err := tx.QueryRow(ctx, insert,
			voucher.Code,
			voucher.ClientID,
			voucher.ProcedureID,
			voucher.DiscountType,
			voucher.DiscountValue,
			voucher.CreatedAt,
			voucher.ExpiresAt,
			voucher.Used,
			voucher.UsedAt,
		).Scan(&voucher.ID); err != nil {
			return err
		}

		return insertHistory(ctx, tx, voucher.ID, domain.HistoryActionCreated, actorID)
	})
}

// ErrActiveVoucherExists signals the single-active-voucher invariant.
var ErrActiveVoucherExists = errors.New("active voucher already exists")

// MarkUsedWithHistory flips the used flag and appends the USADO audit row
// atomically. The WHERE usado = FALSE condition rejects a racing second
// caller even after both passed the service-level check.
func (r *voucherRepository) MarkUsedWithHistory(ctx context.Context, id int64, usedAt time.Time, actorID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx,
			`UPDATE bonos SET usado = TRUE, fecha_uso=$1 WHERE bono_id=$2 AND usado = FALSE`,
			usedAt, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return ErrVoucherAlreadyUsed
		}
		return insertHistory(ctx, tx, id, domain.HistoryActionUsed, actorID)
	})
}

// RevertWithHistory clears the used flag and appends the REVERTIDO audit
// row atomically.
func (r *voucherRepository) RevertWithHistory(ctx context.Context, id int64, actorID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx,
			`UPDATE bonos SET usado = FALSE, fecha_uso = NULL WHERE bono_id=$1 AND usado = TRUE`,
			id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return ErrVoucherNotUsed
		}
		return insertHistory(ctx, tx, id, domain.HistoryActionReverted, actorID)
	})
}

func (r *voucherRepository) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertHistory(ctx context.Context, tx pgx.Tx, voucherID int64, action domain.HistoryAction, actorID int64) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO historial_bonos (bono_id, accion, fecha, usuario_id) VALUES ($1,$2,NOW(),$3)`,
		voucherID, action, actorID)
	return err
}

func scanVoucher(row pgx.Row, voucher *domain.Voucher) error {
	return row.Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.ClientID,
		&voucher.ProcedureID,
		&voucher.DiscountType,
		&voucher.DiscountValue,
		&voucher.CreatedAt,
		&voucher.ExpiresAt,
		&voucher.Used,
		&voucher.UsedAt,
	)
}

func scanVouchers(rows pgx.Rows) ([]domain.Voucher, error) {
	var result []domain.Voucher
	for rows.Next() {
		var voucher domain.Voucher
		if err := scanVoucher(rows, &voucher); err != nil {
			return nil, err
		}
		result = append(result, voucher)
	}
	return result, rows.Err()
}
