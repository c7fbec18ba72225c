package models

// MatchStats describes how well a catalog entry matched an input phrase.
// Confidence is normalized to [0,1] across the candidate set.
type MatchStats struct {
	Occurrence int     `json:"occurrence"`
	Distance   float64 `json:"distance"`
	Confidence float64 `json:"confidence"`
}

// FoodRef is a lightweight (id, name) row served by the fuzzy index.
type FoodRef struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Stats *MatchStats `json:"stats,omitempty" gorm:"-"`
}

// Food is a catalog entry. Quantity, Nutrients and Stats are populated per
// resolution and never persisted.
type Food struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" gorm:"not null"`
	RefID     uint        `json:"ref_id,omitempty"`
	Quantity  float64     `json:"quantity,omitempty" gorm:"-"`
	Nutrients []Nutrient  `json:"nutrients,omitempty" gorm:"-"`
	Stats     *MatchStats `json:"stats,omitempty" gorm:"-"`
}

func (Food) TableName() string { return "foods" }

// FoodNutrient links a food to a nutrient with its quantity per 100 g.
type FoodNutrient struct {
	FoodID     uint    `json:"food_id" gorm:"primaryKey"`
	NutrientID uint    `json:"nutrient_id" gorm:"primaryKey"`
	Quantity   float64 `json:"quantity"`
}

func (FoodNutrient) TableName() string { return "food_nutrients" }
