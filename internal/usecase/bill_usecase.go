package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase/interfaces"
)

var ErrInvalidBillID = errors.New("invalid bill id")

// IBillUseCase exposes read access to bill snapshots.

type IBillUseCase interface {
	GetBill(ctx context.Context, userID, period string) (entities.Bill, error)
	GetBillByID(ctx context.Context, billID string) (entities.Bill, error)
}

type BillUseCase struct {
	repo interfaces.IBillingRepository
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(repo interfaces.IBillingRepository) *BillUseCase {
	return &BillUseCase{repo: repo}
}

func (u *BillUseCase) GetBill(ctx context.Context, userID, period string) (entities.Bill, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Bill{}, ErrInvalidUserID
	}
	if err := validatePeriod(period); err != nil {
		return entities.Bill{}, err
	}

	bill, err := u.repo.GetBill(ctx, userID, period)
	if err != nil {
		return entities.Bill{}, err
	}
	if bill.BillID == "" {
		return entities.Bill{}, fmt.Errorf("%w: user_id=%s period=%s", ErrBillNotFound, userID, period)
	}
	return bill, nil
}

func (u *BillUseCase) GetBillByID(ctx context.Context, billID string) (entities.Bill, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrInvalidBillID
	}

	bill, err := u.repo.GetBillByID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if bill.BillID == "" {
		return entities.Bill{}, fmt.Errorf("%w: bill_id=%s", ErrBillNotFound, billID)
	}
	return bill, nil
}
