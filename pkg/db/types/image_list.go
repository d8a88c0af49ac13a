package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageList stores a product image snapshot as a JSON array column.
//
// Scan is deliberately tolerant: a corrupted value decodes to an empty list
// instead of failing the row, so an unreadable persisted cart degrades to an
// empty snapshot rather than a crash.
type ImageList []string

func (l *ImageList) Scan(src any) error {
	if src == nil {
		*l = ImageList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("ImageList: unsupported Scan type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		*l = ImageList{}
		return nil
	}
	*l = out
	return nil
}

func (l ImageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("ImageList: marshal: %w", err)
	}
	return string(raw), nil
}
