package models

// Nutrient is a catalog nutrient. Quantity carries the per-100g amount from
// the food_nutrients join and is rescaled per resolution; it is not a column
// of the nutrients table.
type Nutrient struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Quantity       float64         `json:"quantity,omitempty" gorm:"-:migration"`
	Recommendation *Recommendation `json:"recommendation,omitempty" gorm:"-"`
	Properties     []Property      `json:"properties,omitempty" gorm:"-"`
}

func (Nutrient) TableName() string { return "nutrients" }

// Recommendation holds the daily reference levels for a nutrient. The
// dataset stores non-numeric markers ("ND", "-") in the bound columns, hence
// the string types.
type Recommendation struct {
	NutrientID        uint    `json:"-" gorm:"primaryKey"`
	DailyAmountMale   float64 `json:"daily_amount_male"`
	DailyAmountFemale float64 `json:"daily_amount_female"`
	Ear               string  `json:"ear"`
	HighestRdaAi      string  `json:"highest_rda_ai"`
	Ul                string  `json:"ul"`
	Unit              string  `json:"unit"`
	HealthRiskRatio   float64 `json:"health_risk_ratio" gorm:"-"`
}

func (Recommendation) TableName() string { return "recommendations" }

// Property is a qualitative trait associated to a nutrient ("good for the
// skin" and the like).
type Property struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Descr string `json:"descr"`
}

func (Property) TableName() string { return "properties" }

// NutrientProperty links a nutrient to a property.
type NutrientProperty struct {
	NutrientID uint `json:"nutrient_id" gorm:"primaryKey"`
	PropertyID uint `json:"property_id" gorm:"primaryKey"`
}

func (NutrientProperty) TableName() string { return "nutrient_properties" }

// Logic operators accepted by the foods-by-nutrients query.
const (
	OperatorAnd = "AND"
	OperatorOr  = "OR"
)
