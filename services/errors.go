package services

import (
	"errors"
	"fmt"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrorKind is the machine-readable classification a caller can branch
// on. Anything not carrying a kind is an infrastructure failure.
type ErrorKind string

const (
	KindValidation             ErrorKind = "validation_error"
	KindInvalidRange           ErrorKind = "invalid_range"
	KindNotFound               ErrorKind = "not_found"
	KindRoomUnavailable        ErrorKind = "room_unavailable"
	KindDuplicatePhone         ErrorKind = "duplicate_phone"
	KindConflict               ErrorKind = "conflict"
	KindConflictRetryExhausted ErrorKind = "conflict_retry_exhausted"
)

type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func domainErrf(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the domain kind from err, if it has one.
func KindOf(err error) (ErrorKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// isDuplicateKey detects a unique-constraint violation across drivers.
// gorm translates these when TranslateError is on; the mysql check and
// the string sniff cover paths where translation doesn't apply.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}
