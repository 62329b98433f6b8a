package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrInvalidJSON           = errors.New("report is not valid JSON")
	ErrEmptyReport           = errors.New("report must be a JSON object")
	ErrUnsupportedComplement = errors.New("unsupported complement type")
	ErrStorageUnavailable    = errors.New("object storage is not configured")
	ErrDownloadFailed        = errors.New("report download from storage failed")
)
