package repository

import (
	"errors"

	"kind_contact_server/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError maps database errors onto business codes:
// gorm.ErrRecordNotFound becomes CodeNotFound, everything else CodeDBError.
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf is wrapDBError with a formatted message.
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}
