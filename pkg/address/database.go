package address

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/vnaddress/pkg/logger"
)

// Database is an immutable index of provinces and their wards.
// All methods are safe for concurrent use. A nil *Database behaves as an
// empty dataset.
//
// Names are compared after NFC normalization and full Unicode case folding,
// not plain ASCII case folding: "HÀ NỘI" matches "Hà Nội", and a name typed
// with combining accents (decomposed form) matches its precomposed spelling.
// Diacritics stay significant, so "Ha Noi" never matches.
type Database struct {
	provinces map[string]*Province // fold key -> province
	order     []string             // canonical province names, Vietnamese collation order
	wardCount int
}

// New builds a Database from in-memory records.
//
// Names are trimmed and NFC-composed. When two records fold to the same
// province key the later record replaces the earlier one entirely; the
// replacement is logged at WARN level. Duplicate wards within a province
// collapse into a single entry.
func New(records []ProvinceRecord, opts ...Option) (*Database, error) {
	o := newOptions(opts)

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	db := &Database{
		provinces: make(map[string]*Province, len(records)),
	}

	for i, rec := range records {
		name := normalizeName(rec.Name)
		if name == "" {
			return nil, errors.Join(ErrInvalidDataset, fmt.Errorf("province at index %d has no name", i))
		}

		p := &Province{
			name:  name,
			wards: make(map[string]string, len(rec.Wards)),
		}
		for j, w := range rec.Wards {
			wardName := normalizeName(w.Name)
			if wardName == "" {
				return nil, errors.Join(ErrInvalidDataset, fmt.Errorf("ward at index %d of province %q has no name", j, name))
			}
			key := foldKey(wardName)
			if _, dup := p.wards[key]; dup {
				continue
			}
			p.wards[key] = wardName
			p.order = append(p.order, wardName)
		}
		sortVietnamese(p.order)

		key := foldKey(name)
		if prev, dup := db.provinces[key]; dup {
			o.logger.Warn("duplicate province replaced",
				logger.Province(name),
				slog.String("replaced", prev.name),
				logger.Dataset(o.source),
			)
		}
		db.provinces[key] = p
	}

	db.order = make([]string, 0, len(db.provinces))
	for _, p := range db.provinces {
		db.order = append(db.order, p.name)
		db.wardCount += len(p.wards)
	}
	sortVietnamese(db.order)

	o.logger.Info("address dataset loaded",
		logger.Dataset(o.source),
		slog.Int("provinces", len(db.provinces)),
		slog.Int("wards", db.wardCount),
	)

	return db, nil
}

// IsValidProvince reports whether the trimmed name matches a province,
// ignoring case. Blank input is never valid.
func (db *Database) IsValidProvince(name string) bool {
	_, ok := db.lookup(name)
	return ok
}

// IsValidAddressPair reports whether ward belongs to province. Both names are
// trimmed and compared ignoring case. A ward that only exists under another
// province does not match.
func (db *Database) IsValidAddressPair(province, ward string) bool {
	if strings.TrimSpace(ward) == "" {
		return false
	}
	p, ok := db.lookup(province)
	if !ok {
		return false
	}
	return p.HasWard(ward)
}

// Provinces returns all province names in Vietnamese collation order.
// The returned slice is a copy.
func (db *Database) Provinces() []string {
	if db == nil {
		return nil
	}
	out := make([]string, len(db.order))
	copy(out, db.order)
	return out
}

// Province returns the province matching name, ignoring case.
func (db *Database) Province(name string) (Province, bool) {
	p, ok := db.lookup(name)
	if !ok {
		return Province{}, false
	}
	return *p, true
}

// Wards returns the wards of the province matching name in Vietnamese
// collation order.
func (db *Database) Wards(province string) ([]string, bool) {
	p, ok := db.lookup(province)
	if !ok {
		return nil, false
	}
	return p.Wards(), true
}

// CanonicalProvince returns the dataset spelling of the province matching name.
func (db *Database) CanonicalProvince(name string) (string, bool) {
	p, ok := db.lookup(name)
	if !ok {
		return "", false
	}
	return p.name, true
}

// CanonicalWard returns the dataset spelling of both the province and the
// ward when the pair is valid.
func (db *Database) CanonicalWard(province, ward string) (string, string, bool) {
	p, ok := db.lookup(province)
	if !ok {
		return "", "", false
	}
	w, ok := p.ward(ward)
	if !ok {
		return "", "", false
	}
	return p.name, w, true
}

// Len returns the number of provinces.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.provinces)
}

// WardCount returns the total number of wards across all provinces.
func (db *Database) WardCount() int {
	if db == nil {
		return 0
	}
	return db.wardCount
}

func (db *Database) lookup(name string) (*Province, bool) {
	if db == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	p, ok := db.provinces[foldKey(name)]
	return p, ok
}
