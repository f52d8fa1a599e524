package i18n

import "errors"

var (
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrNoTranslations     = errors.New("no translations found")
	ErrInvalidTranslation = errors.New("invalid translations")
	ErrNilAdapter         = errors.New("translation adapter is nil")
)
