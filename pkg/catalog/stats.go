package catalog

import "github.com/matst80/slask-photos/pkg/types"

// computeStats runs the one full pass the quick-stat toggles need.
// Independent of any filter state, so only catalog changes trigger it.
func computeStats(photos []types.Photo) types.QuickStats {
	stats := types.QuickStats{Total: len(photos)}
	for i := range photos {
		p := &photos[i]
		if p.HasPeople {
			stats.People++
		}
		if p.HasAnimal {
			stats.Animals++
		}
		if !p.HasPeople && !p.HasAnimal {
			stats.Neither++
		}
		if p.IsMonochrome {
			stats.Monochrome++
		} else {
			stats.Color++
		}
		if p.HasOCRText {
			stats.WithText++
		}
	}
	return stats
}
