package places

import "github.com/octobees/lead-finder/internal/entity"

// Merge combines batches into one list keyed by place id. The first record
// seen for an id wins and output order follows first appearance.
func Merge(batches ...[]entity.Business) []entity.Business {
	seen := make(map[string]struct{})
	var merged []entity.Business
	for _, batch := range batches {
		for _, b := range batch {
			if _, ok := seen[b.PlaceID]; ok {
				continue
			}
			seen[b.PlaceID] = struct{}{}
			merged = append(merged, b)
		}
	}
	return merged
}
