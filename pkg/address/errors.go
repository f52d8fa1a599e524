package address

import "errors"

var (
	// ErrDatasetNotFound is returned when the dataset file or embedded resource does not exist.
	ErrDatasetNotFound = errors.New("address dataset not found")

	// ErrReadDataset is returned when the dataset exists but cannot be read.
	ErrReadDataset = errors.New("failed to read address dataset")

	// ErrInvalidDataset is returned when the dataset does not match the expected shape.
	ErrInvalidDataset = errors.New("invalid address dataset")

	// ErrEmptyDataset is returned when the dataset contains no provinces.
	ErrEmptyDataset = errors.New("address dataset contains no provinces")

	// ErrUnsupportedFormat is returned when no parser handles the dataset file extension.
	ErrUnsupportedFormat = errors.New("unsupported address dataset format")

	// ErrLoadCancelled is returned when the context is done before the dataset is loaded.
	ErrLoadCancelled = errors.New("address dataset loading cancelled")

	// ErrNilSource is returned when a nil reader, parser or filesystem is passed to a loader.
	ErrNilSource = errors.New("nil address dataset source")
)
