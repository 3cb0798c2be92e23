// internal/repository/repository.go
package repository

import "gorm.io/gorm"

// Transaction scopes a group of repository calls to one database
// transaction. Rollback after a successful Commit is a no-op error, so
// callers defer it unconditionally.
type Transaction interface {
	Commit() error
	Rollback() error
}

type gormTransaction struct {
	tx *gorm.DB
}

func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

func (t *gormTransaction) Rollback() error {
	return t.tx.Rollback().Error
}
