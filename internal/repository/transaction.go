package repository

import (
	"database/sql"
	"fmt"
)

// dbExecutor abstracts over *sql.DB and *sql.Tx so repositories can run
// inside or outside a transaction
type dbExecutor interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// transactionManager implements TransactionManager
type transactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *sql.DB) TransactionManager {
	return &transactionManager{db: db}
}

// WithTransaction executes fn inside a database transaction, rolling back
// on error and committing on success
func (tm *transactionManager) WithTransaction(fn func(repos *Repositories) error) error {
	tx, err := tm.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	repos := &Repositories{
		Assessment: NewAssessmentRepository(tx),
		User:       NewUserRepository(tx),
	}

	if err := fn(repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %v, rollback failed: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// NewRepositories wires all repositories against a live database handle
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Assessment: NewAssessmentRepository(db),
		User:       NewUserRepository(db),
		Tx:         NewTransactionManager(db),
	}
}
