package stats

import (
	"math"

	"github.com/samber/lo"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
)

// Aggregate folds a room's ratings into summary stats. It does not trust
// its input: values outside [1,5] are skipped even though the submit path
// never lets them in.
func Aggregate(ratings map[model.ConnID]model.Rating) model.Stats {
	var s model.Stats

	valid := lo.Filter(lo.Values(ratings), func(v model.Rating, _ int) bool {
		return v >= model.MinRating && v <= model.MaxRating
	})
	if len(valid) == 0 {
		return s
	}

	for _, v := range valid {
		s.Distribution[v-1]++
	}
	s.Count = len(valid)
	s.Avg = round2(float64(lo.Sum(valid)) / float64(s.Count))

	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
