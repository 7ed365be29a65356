package validators

import "github.com/MKhiriev/go-model-config/models"

// Occurrence is the number of times a parameter kind appears among the
// arguments of one build call.
type Occurrence struct {
	Kind  models.Kind
	Count int
}

// OccurrenceCounts tallies every distinct kind in params, in order of first
// appearance. Nil entries are not counted.
func OccurrenceCounts(params []models.Parameter) []Occurrence {
	index := make(map[models.Kind]int, len(params))
	counts := make([]Occurrence, 0, len(params))

	for _, p := range params {
		if p == nil {
			continue
		}
		kind := p.Kind()
		if i, ok := index[kind]; ok {
			counts[i].Count++
			continue
		}
		index[kind] = len(counts)
		counts = append(counts, Occurrence{Kind: kind, Count: 1})
	}

	return counts
}

// Duplicates returns a *DuplicateParameterTypeError for every kind that
// occurs more than once, in order of first appearance.
func Duplicates(params []models.Parameter) []error {
	var errs []error
	for _, o := range OccurrenceCounts(params) {
		if o.Count != 1 {
			errs = append(errs, &DuplicateParameterTypeError{Kind: o.Kind, Count: o.Count})
		}
	}
	return errs
}
