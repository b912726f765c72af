package annotation

import (
	"math"

	"github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"
)

const (
	labelPrecision  = 3
	entityPrecision = 2
)

// NormalizeLabels converts label probabilities into bar widths.
// Each percent is score*100 rounded to 3 decimals, in input order.
func NormalizeLabels(labels []model.LabelAnnotation) []model.LabelRow {
	rows := make([]model.LabelRow, 0, len(labels))
	for _, l := range labels {
		rows = append(rows, model.LabelRow{
			Description: l.Description,
			Percent:     round(clampPercent(l.Score*100), labelPrecision),
		})
	}
	return rows
}

// MaxScore returns the largest entity score, or 0 when there are none.
func MaxScore(entities []model.WebEntity) float64 {
	if len(entities) == 0 {
		return 0
	}
	best := entities[0].Score
	for _, e := range entities[1:] {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}

// NormalizeEntities scales entity scores against maxScore. A non-positive
// maxScore means there is nothing to compare against and every percent is 0.
func NormalizeEntities(entities []model.WebEntity, maxScore float64) []model.EntityRow {
	rows := make([]model.EntityRow, 0, len(entities))
	for _, e := range entities {
		var pct float64
		if maxScore > 0 {
			pct = round(clampPercent(e.Score/maxScore*100), entityPrecision)
		}
		rows = append(rows, model.EntityRow{
			Description: e.Description,
			Score:       e.Score,
			Percent:     pct,
		})
	}
	return rows
}

func round(v float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
