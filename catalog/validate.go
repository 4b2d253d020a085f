package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingID   = errors.New("missing id")
	ErrDuplicateID = errors.New("duplicate id")
)

// ValidTrucks drops records with a blank or repeated id and reports why each was dropped.
func ValidTrucks(trucks []Truck) ([]Truck, []error) {
	valid := make([]Truck, 0, len(trucks))
	var errs []error
	seen := make(map[string]bool, len(trucks))
	for i, t := range trucks {
		if err := checkID(t.ID, i, seen); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, t)
	}
	return valid, errs
}

// ValidDescriptions applies the same id rules as ValidTrucks.
func ValidDescriptions(descs []TruckDescription) ([]TruckDescription, []error) {
	valid := make([]TruckDescription, 0, len(descs))
	var errs []error
	seen := make(map[string]bool, len(descs))
	for i, d := range descs {
		if err := checkID(d.ID, i, seen); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, d)
	}
	return valid, errs
}

func checkID(id string, index int, seen map[string]bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("record %d: %w", index, ErrMissingID)
	}
	if seen[id] {
		return fmt.Errorf("record %d: %w %q", index, ErrDuplicateID, id)
	}
	seen[id] = true
	return nil
}
