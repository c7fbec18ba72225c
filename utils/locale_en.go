// utils/locale_en.go
package utils

var localeEN = &Locale{
	Lang: LangEN,
	Units: NominalUnits{
		Milligrams:  []string{"mg", "milligram", "milligrams"},
		Grams:       []string{"g", "gr", "gram", "grams"},
		Kilograms:   []string{"kg", "kilo", "kilos", "kilogram", "kilograms"},
		Milliliters: []string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"},
		Liters:      []string{"l", "lt", "liter", "liters", "litre", "litres"},
	},
	WordNumbers: map[string]float64{
		"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
		"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"half": 0.5, "quarter": 0.25, "dozen": 12,
	},
	Plurals: map[string]string{
		"spoons":      "spoon",
		"tablespoons": "tablespoon",
		"teaspoons":   "teaspoon",
		"cups":        "cup",
		"glasses":     "glass",
		"pinches":     "pinch",
		"slices":      "slice",
	},
	IngredientTypes: []string{"oil", "butter", "flour", "sugar", "salt", "honey", "milk", "water", "rice"},
	DefaultType:     "solid",
	ApproxWeights: map[string]map[string]float64{
		"spoon":      {"solid": 20, "oil": 13, "butter": 14, "flour": 15, "sugar": 20, "salt": 20, "honey": 21, "milk": 15, "water": 15},
		"tablespoon": {"solid": 20, "oil": 13, "butter": 14, "flour": 15, "sugar": 20, "salt": 20, "honey": 21, "milk": 15, "water": 15},
		"teaspoon":   {"solid": 7, "oil": 4.5, "butter": 4.7, "flour": 5, "sugar": 7, "salt": 6, "honey": 7},
		"cup":        {"solid": 240, "oil": 220, "butter": 227, "flour": 120, "sugar": 200, "rice": 185, "milk": 245, "water": 240},
		"glass":      {"solid": 200, "milk": 205, "water": 200, "oil": 183},
		"pinch":      {"solid": 0.3},
		"slice":      {"solid": 25},
	},
	StopWords:  []string{"of", "the", "a", "an", "and", "with", "fresh", "raw", "to", "for"},
	Separators: []string{"and"},
	Fillers:    []string{"of"},
}
