// Package service implements the Connect RPC services on top of the storage
// layer and the distribution engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"connectrpc.com/connect"

	"github.com/dividircl/backend/internal/distribution"
	"github.com/dividircl/backend/internal/edit"
	"github.com/dividircl/backend/internal/middleware"
	"github.com/dividircl/backend/internal/models"
	"github.com/dividircl/backend/internal/numeric"
	"github.com/dividircl/backend/internal/storage"
	"github.com/dividircl/backend/pkg/rpc"
)

// shareBaseURL is the WhatsApp deep link the share URL is built on.
const shareBaseURL = "https://wa.me/"

// ReceiptService handles receipt CRUD and the distribution view. Every
// operation is scoped to the authenticated user's email.
type ReceiptService struct {
	store  storage.Store
	logger *slog.Logger
}

var _ rpc.ReceiptServiceHandler = (*ReceiptService)(nil)

// NewReceiptService creates a receipt service backed by the given store.
func NewReceiptService(store storage.Store, logger *slog.Logger) *ReceiptService {
	return &ReceiptService{store: store, logger: logger}
}

// CreateReceipt stores a new receipt owned by the authenticated user.
func (s *ReceiptService) CreateReceipt(ctx context.Context, req *connect.Request[rpc.CreateReceiptRequest]) (*connect.Response[rpc.CreateReceiptResponse], error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	receipt := receiptFromWire(req.Msg.PlaceName, req.Msg.TipPercent.Float64(), req.Msg.Items, req.Msg.People)
	receipt.UserEmail = email

	if err := s.store.CreateReceipt(ctx, receipt); err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to create receipt: %w", err))
	}

	s.logger.Info("receipt created",
		"receipt_id", receipt.ID,
		"items", len(receipt.Items),
		"people", len(receipt.People),
	)
	return connect.NewResponse(&rpc.CreateReceiptResponse{Receipt: receiptToWire(receipt)}), nil
}

// GetReceipt fetches one receipt owned by the authenticated user.
func (s *ReceiptService) GetReceipt(ctx context.Context, req *connect.Request[rpc.GetReceiptRequest]) (*connect.Response[rpc.GetReceiptResponse], error) {
	receipt, err := s.loadOwned(ctx, req.Msg.ReceiptID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetReceiptResponse{Receipt: receiptToWire(receipt)}), nil
}

// ListReceipts returns the authenticated user's receipts, newest first.
func (s *ReceiptService) ListReceipts(ctx context.Context, _ *connect.Request[rpc.ListReceiptsRequest]) (*connect.Response[rpc.ListReceiptsResponse], error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	receipts, err := s.store.ListReceiptsByUser(ctx, email)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to list receipts: %w", err))
	}

	out := make([]*rpc.Receipt, len(receipts))
	for i, receipt := range receipts {
		out[i] = receiptToWire(receipt)
	}
	return connect.NewResponse(&rpc.ListReceiptsResponse{Receipts: out}), nil
}

// UpdateReceipt replaces the receipt's editable contents. The incoming state
// is diffed against the stored one so the log records what actually changed.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, req *connect.Request[rpc.UpdateReceiptRequest]) (*connect.Response[rpc.UpdateReceiptResponse], error) {
	existing, err := s.loadOwned(ctx, req.Msg.ReceiptID)
	if err != nil {
		return nil, err
	}

	receipt := receiptFromWire(req.Msg.PlaceName, req.Msg.TipPercent.Float64(), req.Msg.Items, req.Msg.People)
	receipt.ID = existing.ID
	receipt.UserEmail = existing.UserEmail
	receipt.CreatedAt = existing.CreatedAt

	changes := edit.Diff(receipt, existing)
	if !changes.HasChanges() {
		return connect.NewResponse(&rpc.UpdateReceiptResponse{Receipt: receiptToWire(existing)}), nil
	}

	if err := s.store.UpdateReceipt(ctx, receipt); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to update receipt: %w", err))
	}

	s.logger.Info("receipt updated",
		"receipt_id", receipt.ID,
		"changed", changes.Fields(),
	)
	return connect.NewResponse(&rpc.UpdateReceiptResponse{Receipt: receiptToWire(receipt)}), nil
}

// DeleteReceipt removes a receipt owned by the authenticated user.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, req *connect.Request[rpc.DeleteReceiptRequest]) (*connect.Response[rpc.DeleteReceiptResponse], error) {
	if _, err := s.loadOwned(ctx, req.Msg.ReceiptID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteReceipt(ctx, req.Msg.ReceiptID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to delete receipt: %w", err))
	}

	s.logger.Info("receipt deleted", "receipt_id", req.Msg.ReceiptID)
	return connect.NewResponse(&rpc.DeleteReceiptResponse{}), nil
}

// SplitItem replaces a multi-quantity item with per-unit copies and persists
// the result. Splitting an item with quantity <= 1 is a no-op that returns
// the receipt unchanged.
func (s *ReceiptService) SplitItem(ctx context.Context, req *connect.Request[rpc.SplitItemRequest]) (*connect.Response[rpc.SplitItemResponse], error) {
	receipt, err := s.loadOwned(ctx, req.Msg.ReceiptID)
	if err != nil {
		return nil, err
	}

	split := edit.SplitItem(receipt, req.Msg.ItemID)
	if changes := edit.Diff(split, receipt); changes.HasChanges() {
		if err := s.store.UpdateReceipt(ctx, split); err != nil {
			return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to save split: %w", err))
		}
		s.logger.Info("item split",
			"receipt_id", receipt.ID,
			"item_id", req.Msg.ItemID,
		)
	}
	return connect.NewResponse(&rpc.SplitItemResponse{Receipt: receiptToWire(split)}), nil
}

// GetDistribution computes the per-person breakdown, the reconciliation
// check, and the shareable text for a receipt.
func (s *ReceiptService) GetDistribution(ctx context.Context, req *connect.Request[rpc.GetDistributionRequest]) (*connect.Response[rpc.GetDistributionResponse], error) {
	receipt, err := s.loadOwned(ctx, req.Msg.ReceiptID)
	if err != nil {
		return nil, err
	}

	totals := distribution.ComputeTotals(receipt)
	summary := distribution.Summarize(receipt)
	validation := distribution.Validate(receipt, totals)
	shareText := distribution.FormatShareText(receipt, totals)

	if validation.HasDiscrepancy {
		s.logger.Warn("distribution discrepancy",
			"receipt_id", receipt.ID,
			"difference", validation.Difference,
		)
	}

	people := totals.People()
	wireTotals := make(map[string]*rpc.PersonTotal, len(people))
	for _, person := range people {
		pt := totals.Get(person)
		individual := make(map[string]float64, len(pt.Individual))
		for name, amount := range pt.Individual {
			individual[name] = amount
		}
		wireTotals[person] = &rpc.PersonTotal{
			Individual: individual,
			Shared:     pt.Shared,
			Total:      pt.Total(),
		}
	}

	query := url.Values{"text": {shareText}}
	return connect.NewResponse(&rpc.GetDistributionResponse{
		Summary: &rpc.Summary{
			Subtotal:  summary.Subtotal,
			TipAmount: summary.TipAmount,
			Total:     summary.Total,
		},
		People:     people,
		Totals:     wireTotals,
		Validation: validationToWire(validation),
		ShareText:  shareText,
		ShareURL:   shareBaseURL + "?" + query.Encode(),
	}), nil
}

// loadOwned fetches a receipt and verifies the caller owns it. A receipt
// owned by someone else reports permission denied rather than not found, the
// caller already proved the ID exists.
func (s *ReceiptService) loadOwned(ctx context.Context, receiptID string) (*models.Receipt, error) {
	email, err := callerEmail(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.store.GetReceipt(ctx, receiptID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to get receipt: %w", err))
	}

	if receipt.UserEmail != email {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("receipt belongs to another user"))
	}
	return receipt, nil
}

func callerEmail(ctx context.Context) (string, error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errors.New("no authenticated user"))
	}
	return email, nil
}

// receiptFromWire converts the wire form into the domain model, normalizing
// the same way the edit boundary does: a zero quantity becomes 1, people
// names are trimmed and blank ones dropped. Owners are stored verbatim, even
// ones absent from the people list; the engine handles those.
func receiptFromWire(placeName string, tipPercent float64, items []*rpc.ReceiptItem, people []string) *models.Receipt {
	receipt := &models.Receipt{
		PlaceName:  placeName,
		TipPercent: tipPercent,
		Items:      make([]models.Item, 0, len(items)),
	}
	for _, person := range people {
		if trimmed := strings.TrimSpace(person); trimmed != "" {
			receipt.People = append(receipt.People, trimmed)
		}
	}
	for _, item := range items {
		quantity := item.Quantity.Int()
		if quantity == 0 {
			quantity = 1
		}
		receipt.Items = append(receipt.Items, models.Item{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  quantity,
			UnitPrice: item.UnitPrice.Float64(),
			Owners:    append([]string(nil), item.Owners...),
		})
	}
	return receipt
}

func receiptToWire(receipt *models.Receipt) *rpc.Receipt {
	items := make([]*rpc.ReceiptItem, len(receipt.Items))
	for i, item := range receipt.Items {
		items[i] = &rpc.ReceiptItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  numeric.FromFloat64(float64(item.Quantity)),
			UnitPrice: numeric.FromFloat64(item.UnitPrice),
			Owners:    append([]string(nil), item.Owners...),
		}
	}
	return &rpc.Receipt{
		ReceiptID:  receipt.ID,
		UserEmail:  receipt.UserEmail,
		PlaceName:  receipt.PlaceName,
		TipPercent: numeric.FromFloat64(receipt.TipPercent),
		Items:      items,
		People:     append([]string(nil), receipt.People...),
		CreatedAt:  receipt.CreatedAt,
	}
}

func validationToWire(v distribution.ValidationResult) *rpc.ValidationResult {
	if !v.HasDiscrepancy {
		return &rpc.ValidationResult{}
	}
	receiptTotal := v.ReceiptTotal
	personTotalsSum := v.PersonTotalsSum
	difference := v.Difference
	return &rpc.ValidationResult{
		HasDiscrepancy:  true,
		ReceiptTotal:    &receiptTotal,
		PersonTotalsSum: &personTotalsSum,
		Difference:      &difference,
	}
}
