package annotation

import "github.com/Kellan-Anderson/Vision-Media/internal/annotation/model"

// FilterEntities drops entities without a description, keeping order.
func FilterEntities(entities []model.WebEntity) []model.WebEntity {
	out := make([]model.WebEntity, 0, len(entities))
	for _, e := range entities {
		if e.Description == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
