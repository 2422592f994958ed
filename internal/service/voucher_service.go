package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bonos-estetica/voucher-service/internal/domain"
	"github.com/bonos-estetica/voucher-service/internal/events"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// VoucherService coordinates the voucher lifecycle: issue, apply, revert,
// plus the read surfaces. Every successful transition appends exactly one
// audit row, written in the same transaction as the state change.
type VoucherService struct {
	vouchers   repository.VoucherRepository
	history    repository.VoucherHistoryRepository
	clients    repository.ClientRepository
	procedures repository.ProcedureRepository
	dispatcher events.Dispatcher
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// VoucherDependencies bundles collaborators for the voucher service.
type VoucherDependencies struct {
	VoucherRepo   repository.VoucherRepository
	HistoryRepo   repository.VoucherHistoryRepository
	ClientRepo    repository.ClientRepository
	ProcedureRepo repository.ProcedureRepository
	Dispatcher    events.Dispatcher
	Cache         *redis.Client
	CacheTTL      time.Duration
	Logger        *zap.Logger
}

// NewVoucherService constructs the service.
func NewVoucherService(deps VoucherDependencies) *VoucherService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VoucherService{
		vouchers:   deps.VoucherRepo,
		history:    deps.HistoryRepo,
		clients:    deps.ClientRepo,
		procedures: deps.ProcedureRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		logger:     logger,
	}
}

// IssueInput describes the voucher creation payload.
type IssueInput struct {
	ClientID      int64
	ProcedureID   int64
	DiscountValue float64
}

// ApplyResult reports the discount computation for a redeemed voucher.
type ApplyResult struct {
	OriginalPrice float64
	DiscountType  domain.DiscountType
	DiscountValue float64
	FinalPrice    float64
}

// Issue creates a new percentage voucher for a client/procedure pair.
// Preconditions, first failure wins: procedure exists and is active, client
// exists, no active voucher already covers the pair.
func (s *VoucherService) Issue(ctx context.Context, actorID int64, input IssueInput) (*domain.Voucher, error) {
	procedure, err := s.procedures.GetByID(ctx, input.ProcedureID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("El procedimiento con ID %d no existe", input.ProcedureID))
		}
		return nil, err
	}
	if !procedure.Active {
		return nil, apperrors.NewValidationError(fmt.Sprintf("El procedimiento con ID %d no está activo", input.ProcedureID))
	}

	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("El cliente con ID %d no existe", input.ClientID))
		}
		return nil, err
	}

	exists, err := s.vouchers.ActiveExists(ctx, input.ClientID, input.ProcedureID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"Ya existe un bono activo para el cliente %d y procedimiento %d", input.ClientID, input.ProcedureID))
	}

	now := time.Now()
	voucher := &domain.Voucher{
		Code:          generateVoucherCode(input.ClientID, input.ProcedureID, now),
		ClientID:      input.ClientID,
		ProcedureID:   input.ProcedureID,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: input.DiscountValue,
		CreatedAt:     now,
		ExpiresAt:     now.AddDate(0, 0, domain.ValidityDays),
		Used:          false,
	}

	if err := s.vouchers.CreateWithHistory(ctx, voucher, actorID); err != nil {
		if errors.Is(err, repository.ErrActiveVoucherExists) {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"Ya existe un bono activo para el cliente %d y procedimiento %d", input.ClientID, input.ProcedureID))
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventVoucherIssued,
		VoucherID: voucher.ID,
		ActorID:   actorID,
		Payload: events.VoucherIssuedPayload{
			Code:          voucher.Code,
			ClientID:      voucher.ClientID,
			ProcedureID:   voucher.ProcedureID,
			DiscountType:  voucher.DiscountType,
			DiscountValue: voucher.DiscountValue,
			ExpiresAt:     voucher.ExpiresAt,
		},
	})
	return voucher, nil
}

// Apply redeems a voucher against its procedure and computes the
// discounted price. Preconditions in order: voucher exists, not already
// used, within validity, matches the supplied procedure, procedure still
// resolvable.
func (s *VoucherService) Apply(ctx context.Context, actorID, voucherID, procedureID int64) (*ApplyResult, error) {
	voucher, err := s.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Bono con ID %d no encontrado", voucherID))
		}
		return nil, err
	}

	if voucher.Used {
		return nil, apperrors.NewValidationError("El bono ya ha sido utilizado")
	}

	now := time.Now()
	if !voucher.WithinValidity(now) {
		return nil, apperrors.NewValidationError("El bono está fuera de su período de vigencia")
	}

	if voucher.ProcedureID != procedureID {
		return nil, apperrors.NewValidationError("El bono no corresponde al procedimiento especificado")
	}

	procedure, err := s.procedures.GetByID(ctx, procedureID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("El procedimiento con ID %d no existe", procedureID))
		}
		return nil, err
	}

	finalPrice := domain.FinalPrice(procedure.Price, voucher.DiscountType, voucher.DiscountValue)

	if err := s.vouchers.MarkUsedWithHistory(ctx, voucher.ID, now, actorID); err != nil {
		if errors.Is(err, repository.ErrVoucherAlreadyUsed) {
			return nil, apperrors.NewValidationError("El bono ya ha sido utilizado")
		}
		return nil, err
	}

	s.invalidateCache(ctx, voucher.Code)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventVoucherApplied,
		VoucherID: voucher.ID,
		ActorID:   actorID,
		Payload: events.VoucherAppliedPayload{
			Code:          voucher.Code,
			ProcedureID:   procedure.ID,
			OriginalPrice: procedure.Price,
			DiscountType:  voucher.DiscountType,
			DiscountValue: voucher.DiscountValue,
			FinalPrice:    finalPrice,
		},
	})

	return &ApplyResult{
		OriginalPrice: procedure.Price,
		DiscountType:  voucher.DiscountType,
		DiscountValue: voucher.DiscountValue,
		FinalPrice:    finalPrice,
	}, nil
}

// Revert undoes a redeemed voucher, returning it to the unused state. The
// expiration window is deliberately not re-validated: a voucher reverted
// past its window simply derives as Expirado on the next read.
func (s *VoucherService) Revert(ctx context.Context, actorID, voucherID int64) error {
	voucher, err := s.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound(fmt.Sprintf("Bono con ID %d no encontrado", voucherID))
		}
		return err
	}

	if !voucher.Used {
		return apperrors.NewValidationError("El bono no ha sido utilizado, no se puede revertir")
	}

	if err := s.vouchers.RevertWithHistory(ctx, voucher.ID, actorID); err != nil {
		if errors.Is(err, repository.ErrVoucherNotUsed) {
			return apperrors.NewValidationError("El bono no ha sido utilizado, no se puede revertir")
		}
		return err
	}

	s.invalidateCache(ctx, voucher.Code)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventVoucherReverted,
		VoucherID: voucher.ID,
		ActorID:   actorID,
		Payload:   events.VoucherRevertedPayload{Code: voucher.Code},
	})
	return nil
}

// List returns every voucher.
func (s *VoucherService) List(ctx context.Context) ([]domain.Voucher, error) {
	return s.vouchers.List(ctx)
}

// GetByCode resolves a voucher with its client and procedure, serving
// repeated lookups from the cache when one is configured.
func (s *VoucherService) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	if cached := s.cacheGet(ctx, code); cached != nil {
		return cached, nil
	}

	voucher, err := s.vouchers.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Bono con código %s no encontrado", code))
		}
		return nil, err
	}

	s.cacheSet(ctx, voucher)
	return voucher, nil
}

// ActiveForClient lists a client's unused, unexpired vouchers.
func (s *VoucherService) ActiveForClient(ctx context.Context, clientID int64) ([]domain.Voucher, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Cliente con ID %d no encontrado", clientID))
		}
		return nil, err
	}
	return s.vouchers.ListActiveByClient(ctx, clientID)
}

// History returns the audit trail for a voucher.
func (s *VoucherService) History(ctx context.Context, voucherID int64) ([]domain.VoucherHistory, error) {
	if _, err := s.vouchers.GetByID(ctx, voucherID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Bono con ID %d no encontrado", voucherID))
		}
		return nil, err
	}
	return s.history.ListByVoucher(ctx, voucherID)
}

func generateVoucherCode(clientID, procedureID int64, now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("BONO-%d-%d-%s-%s", clientID, procedureID, now.Format("20060102"), suffix)
}

func voucherCacheKey(code string) string {
	return "bono:codigo:" + code
}

func (s *VoucherService) cacheGet(ctx context.Context, code string) *domain.Voucher {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, voucherCacheKey(code)).Bytes()
	if err != nil {
		return nil
	}
	var voucher domain.Voucher
	if err := json.Unmarshal(raw, &voucher); err != nil {
		return nil
	}
	return &voucher
}

func (s *VoucherService) cacheSet(ctx context.Context, voucher *domain.Voucher) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(voucher)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, voucherCacheKey(voucher.Code), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("voucher cache set failed", zap.Error(err))
	}
}

func (s *VoucherService) invalidateCache(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, voucherCacheKey(code)).Err(); err != nil {
		s.logger.Debug("voucher cache invalidation failed", zap.Error(err))
	}
}

func (s *VoucherService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
