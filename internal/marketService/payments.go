package market

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

func (s *MarketService) ListPayments(ctx context.Context, p *identity.Principal) ([]model.PaymentView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return nil, fmt.Errorf("service: list payments: %w", err)
	}

	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list payments: %w", err)
	}

	views, err := resolveAll(ctx, payments, newResolver(s.repo).payment)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve payments: %w", err)
	}
	return views, nil
}

func (s *MarketService) GetPayment(ctx context.Context, p *identity.Principal, id uint) (model.PaymentView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.PaymentView{}, fmt.Errorf("service: get payment: %w", err)
	}

	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return model.PaymentView{}, fmt.Errorf("service: failed to get payment %d: %w", id, err)
	}

	view, err := newResolver(s.repo).payment(ctx, payment)
	if err != nil {
		return model.PaymentView{}, fmt.Errorf("service: failed to resolve payment %d: %w", id, err)
	}
	return view, nil
}

// CreatePayment records a manual payment. Method, state and date default to
// the configured method, PENDING and now.
func (s *MarketService) CreatePayment(ctx context.Context, p *identity.Principal, in model.NewPayment) (model.PaymentView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.PaymentView{}, fmt.Errorf("service: create payment: %w", err)
	}
	if in.Amount < 0 {
		return model.PaymentView{}, fmt.Errorf("service: %w - negative payment amount", marketerrors.ErrInvalidInput)
	}

	payment := model.Payment{
		Amount: in.Amount,
		Method: strings.TrimSpace(in.Method),
		Date:   s.now(),
		State:  in.State,
		ItemID: in.ItemID,
		UserID: in.UserID,
	}
	if payment.Method == "" {
		payment.Method = s.paymentMethod
	}
	if payment.State == "" {
		payment.State = model.PaymentPending
	}
	if !payment.State.Valid() {
		return model.PaymentView{}, fmt.Errorf("service: %w - unknown payment state %q", marketerrors.ErrInvalidInput, payment.State)
	}
	if in.Date != nil {
		payment.Date = *in.Date
	}

	var view model.PaymentView
	err := s.repo.Transaction(ctx, func(tx repository.MarketDB) error {
		if err := tx.CreatePayment(ctx, &payment); err != nil {
			return fmt.Errorf("failed to create payment for item %d: %w", in.ItemID, err)
		}
		var err error
		view, err = newResolver(tx).payment(ctx, payment)
		return err
	})
	if err != nil {
		return model.PaymentView{}, fmt.Errorf("service: %w", err)
	}
	return view, nil
}

func (s *MarketService) UpdatePayment(ctx context.Context, p *identity.Principal, id uint, patch model.PaymentPatch) (model.PaymentView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.PaymentView{}, fmt.Errorf("service: update payment: %w", err)
	}

	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return model.PaymentView{}, fmt.Errorf("service: failed to get payment %d: %w", id, err)
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return model.PaymentView{}, fmt.Errorf("service: %w - negative payment amount", marketerrors.ErrInvalidInput)
		}
		payment.Amount = *patch.Amount
	}
	if patch.Method != nil && strings.TrimSpace(*patch.Method) != "" {
		payment.Method = strings.TrimSpace(*patch.Method)
	}
	if patch.Date != nil {
		payment.Date = *patch.Date
	}
	if patch.State != nil {
		if !patch.State.Valid() {
			return model.PaymentView{}, fmt.Errorf("service: %w - unknown payment state %q", marketerrors.ErrInvalidInput, *patch.State)
		}
		payment.State = *patch.State
	}
	if patch.ItemID != nil {
		payment.ItemID = *patch.ItemID
	}
	if patch.UserID != nil {
		payment.UserID = *patch.UserID
	}

	if err := s.repo.UpdatePayment(ctx, &payment); err != nil {
		return model.PaymentView{}, fmt.Errorf("service: failed to update payment %d: %w", id, err)
	}

	view, err := newResolver(s.repo).payment(ctx, payment)
	if err != nil {
		return model.PaymentView{}, fmt.Errorf("service: failed to resolve payment %d: %w", id, err)
	}
	return view, nil
}

func (s *MarketService) DeletePayment(ctx context.Context, p *identity.Principal, id uint) error {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return fmt.Errorf("service: delete payment: %w", err)
	}

	if err := s.repo.DeletePayment(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete payment %d: %w", id, err)
	}
	return nil
}
