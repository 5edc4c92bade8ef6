package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// operation is a staged mutation applied inside the commit transaction
type operation func(tx *gorm.DB) error

// unitOfWork implements UnitOfWork on top of a single gorm connection
type unitOfWork struct {
	db      *gorm.DB
	pending []operation

	persons      *personRepository
	categories   *categoryRepository
	transactions *transactionRepository
}

// NewUnitOfWork creates a unit of work with its repositories
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	uow := &unitOfWork{db: db}
	uow.persons = &personRepository{db: db, stage: uow.stage}
	uow.categories = &categoryRepository{db: db, stage: uow.stage}
	uow.transactions = &transactionRepository{db: db, stage: uow.stage}
	return uow
}

// NewUnitOfWorkFactory returns a factory producing independent units of work
func NewUnitOfWorkFactory(db *gorm.DB) UnitOfWorkFactory {
	return func() UnitOfWork {
		return NewUnitOfWork(db)
	}
}

func (u *unitOfWork) Persons() PersonRepositoryInterface {
	return u.persons
}

func (u *unitOfWork) Categories() CategoryRepositoryInterface {
	return u.categories
}

func (u *unitOfWork) Transactions() TransactionRepositoryInterface {
	return u.transactions
}

func (u *unitOfWork) stage(op operation) {
	u.pending = append(u.pending, op)
}

// Commit applies every staged operation in one database transaction. The staged
// set is discarded afterwards whether or not the commit succeeded.
func (u *unitOfWork) Commit(ctx context.Context) error {
	ops := u.pending
	u.pending = nil

	if len(ops) == 0 {
		return nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}
