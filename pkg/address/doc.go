// Package address validates Vietnamese administrative address components
// (provinces and wards) against a static reference dataset and checks that
// free-form address text only uses characters expected in Vietnamese names.
//
// The package ships with an embedded sample dataset: all 34 provinces and
// centrally-run cities in effect after the 2025 administrative reorganisation,
// but only a selection of their wards, communes and special zones (244 units
// out of roughly 3,300). Real wards missing from the sample fail
// IsValidAddressPair, so production callers must load a complete dataset with
// LoadFile or LoadFS. Datasets are JSON or YAML documents of the shape:
//
//	[
//	  {"name": "Thành phố Hà Nội", "wards": [{"name": "Phường Ba Đình"}, ...]},
//	  ...
//	]
//
// # Architecture
//
// A Database is built exactly once and is immutable afterwards, so a single
// value can be shared by any number of goroutines without synchronisation.
// Province and ward names are indexed by a comparison key produced by NFC
// normalisation followed by Unicode case folding: case differences are
// ignored while diacritics stay significant ("hà nội" matches "Hà Nội",
// "Ha Noi" does not).
//
// Loading is the only fallible step. Query methods never return errors:
// empty, malformed or unknown input simply yields false.
//
// # Usage
//
//	db, err := address.Embedded(ctx, address.WithLogger(log))
//	if err != nil {
//	    log.Error("load address dataset", logger.Error(err))
//	    os.Exit(1)
//	}
//
//	db.IsValidProvince("thành phố hà nội")                        // true
//	db.IsValidAddressPair("Thành phố Hà Nội", "Phường Ba Đình")   // true
//	db.IsValidAddressPair("Thành phố Hà Nội", "Phường Bến Thành") // false
//	address.IsValidCharacters("Hà Nội <script>")                  // false
//
// For code that cannot thread a *Database through, Default lazily loads the
// embedded dataset on first use and returns the same value afterwards.
//
// # Error Handling
//
// Load failures are reported with sentinel errors joined with the underlying
// cause, so callers can match them with errors.Is:
//
//   - ErrDatasetNotFound   – the file or embedded resource does not exist.
//   - ErrInvalidDataset    – the document does not match the expected shape.
//   - ErrEmptyDataset      – the document contains no provinces.
//   - ErrUnsupportedFormat – no parser is registered for the file extension.
//   - ErrLoadCancelled     – the context was done before loading finished.
package address
