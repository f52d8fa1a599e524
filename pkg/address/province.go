package address

import "strings"

// ProvinceRecord is the serialised form of a province in a dataset document.
type ProvinceRecord struct {
	Name  string       `json:"name" yaml:"name"`
	Wards []WardRecord `json:"wards" yaml:"wards"`
}

// WardRecord is the serialised form of a ward in a dataset document.
type WardRecord struct {
	Name string `json:"name" yaml:"name"`
}

// Province is a read-only view of a province and its wards.
// The zero value has no name and no wards.
type Province struct {
	name  string
	wards map[string]string // fold key -> canonical ward name
	order []string          // canonical ward names, Vietnamese collation order
}

// Name returns the province name as spelled in the dataset.
func (p Province) Name() string {
	return p.name
}

// Wards returns the ward names of the province in Vietnamese collation order.
// The returned slice is a copy and may be modified by the caller.
func (p Province) Wards() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// WardCount returns the number of distinct wards in the province.
func (p Province) WardCount() int {
	return len(p.wards)
}

// HasWard reports whether the trimmed ward name belongs to the province,
// ignoring case.
func (p Province) HasWard(ward string) bool {
	_, ok := p.ward(ward)
	return ok
}

func (p Province) ward(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || p.wards == nil {
		return "", false
	}
	canonical, ok := p.wards[foldKey(name)]
	return canonical, ok
}
