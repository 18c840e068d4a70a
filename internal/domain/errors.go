package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrClaimNotFound       = errors.New("claim not found")
	ErrEmptyDocument       = errors.New("no text could be extracted from document")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrArchiveFailed       = errors.New("raw document archive to storage failed")
)
