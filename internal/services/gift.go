// This file defines the gift service. A purchase only records a pending
// transaction; the extra votes are granted by an administrator once the
// payment has been confirmed outside the application.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/repositories/transactions"
	"github.com/google/uuid"
)

type GiftService interface {
	Packages() []models.GiftPackage
	Purchase(ctx context.Context, identity *models.Identity, packageID string) (models.Transaction, error)
}

type giftService struct {
	txs transactions.Repository
	now func() time.Time
	log logging.Logger
}

func NewGiftService(txs transactions.Repository, now func() time.Time, log logging.Logger) GiftService {
	if now == nil {
		now = time.Now
	}
	return &giftService{txs: txs, now: now, log: log}
}

func (s *giftService) Packages() []models.GiftPackage {
	return models.GiftPackages()
}

func (s *giftService) Purchase(ctx context.Context, identity *models.Identity, packageID string) (models.Transaction, error) {
	if err := requireIdentity(identity); err != nil {
		return models.Transaction{}, err
	}

	var pkg *models.GiftPackage
	for _, p := range s.Packages() {
		if p.ID == packageID {
			pkg = &p
			break
		}
	}
	if pkg == nil {
		return models.Transaction{}, fmt.Errorf("%w: package %q", common.ErrNotFound, packageID)
	}

	tx := models.Transaction{
		ID:        uuid.NewString(),
		UserID:    identity.ID,
		UserName:  identity.Name,
		PackageID: pkg.ID,
		Stars:     pkg.Stars,
		Votes:     pkg.Votes,
		Timestamp: s.now().UTC(),
		Status:    models.TransactionPending,
	}
	if err := s.txs.Append(ctx, tx); err != nil {
		return models.Transaction{}, err
	}

	s.log.Info(ctx, "purchase recorded", "identity", identity.ID, "package", pkg.ID, "tx", tx.ID)
	return tx, nil
}
