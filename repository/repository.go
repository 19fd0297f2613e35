package repository

import "errors"

// ErrNotFound is returned by every repository when a lookup matches nothing.
// GORM-backed implementations translate gorm.ErrRecordNotFound into it so
// handlers never depend on the storage driver.
var ErrNotFound = errors.New("record not found")
