package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// VoucherHistoryRepository reads the append-only audit trail. Writes happen
// inside the voucher lifecycle transactions, never through this interface.
type VoucherHistoryRepository interface {
	ListByVoucher(ctx context.Context, voucherID int64) ([]domain.VoucherHistory, error)
}

type voucherHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherHistoryRepository builds repository.
func NewVoucherHistoryRepository(pool *pgxpool.Pool) VoucherHistoryRepository {
	return &voucherHistoryRepository{pool: pool}
}

func (r *voucherHistoryRepository) ListByVoucher(ctx context.Context, voucherID int64) ([]domain.VoucherHistory, error) {
	const query = `
        SELECT historial_id, bono_id, accion, fecha, usuario_id
        FROM historial_bonos WHERE bono_id=$1 ORDER BY fecha ASC, historial_id ASC`
	rows, err := r.pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.VoucherHistory
	for rows.Next() {
		var entry domain.VoucherHistory
		if err := rows.Scan(
			&entry.ID,
			&entry.VoucherID,
			&entry.Action,
			&entry.Date,
			&entry.UserID,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
