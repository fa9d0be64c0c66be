// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"visitadoras/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewProfileRepository creates a new profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// NewAuthRepository creates a new auth repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

// NewRefreshTokenRepository creates a new refresh token repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

// NewCommissionConfigRepository creates a commission config repository bound to the transaction.
func (f *gormRepositoryFactory) NewCommissionConfigRepository() repository.CommissionConfigRepository {
	return NewCommissionConfigRepository(f.tx)
}

// NewMonthlyCommissionRepository creates a monthly commission repository bound to the transaction.
// Row locks taken through it are held until the transaction ends.
func (f *gormRepositoryFactory) NewMonthlyCommissionRepository() repository.MonthlyCommissionRepository {
	return NewMonthlyCommissionRepository(f.tx)
}

// NewReferralCommissionRepository creates a referral commission repository bound to the transaction.
func (f *gormRepositoryFactory) NewReferralCommissionRepository() repository.ReferralCommissionRepository {
	return NewReferralCommissionRepository(f.tx)
}

// NewPaymentRepository creates a payment audit repository bound to the transaction.
func (f *gormRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return NewPaymentRepository(f.tx)
}

// NewVisitadoraCommissionRepository creates a visitadora commission repository bound to the transaction.
func (f *gormRepositoryFactory) NewVisitadoraCommissionRepository() repository.VisitadoraCommissionRepository {
	return NewVisitadoraCommissionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic for the recover middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
