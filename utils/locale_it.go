// utils/locale_it.go
package utils

var localeIT = &Locale{
	Lang: LangIT,
	Units: NominalUnits{
		Milligrams:  []string{"mg", "milligrammo", "milligrammi"},
		Grams:       []string{"g", "gr", "grammo", "grammi"},
		Kilograms:   []string{"kg", "chilo", "chili", "chilogrammo", "chilogrammi"},
		Milliliters: []string{"ml", "millilitro", "millilitri"},
		Liters:      []string{"l", "lt", "litro", "litri"},
	},
	WordNumbers: map[string]float64{
		"un": 1, "uno": 1, "una": 1, "due": 2, "tre": 3, "quattro": 4,
		"cinque": 5, "sei": 6, "sette": 7, "otto": 8, "nove": 9, "dieci": 10,
		"mezzo": 0.5, "mezza": 0.5, "dozzina": 12,
	},
	Plurals: map[string]string{
		"cucchiai":   "cucchiaio",
		"cucchiaini": "cucchiaino",
		"tazze":      "tazza",
		"bicchieri":  "bicchiere",
		"pizzichi":   "pizzico",
		"fette":      "fetta",
	},
	IngredientTypes: []string{"olio", "burro", "farina", "zucchero", "sale", "miele", "latte", "acqua", "riso"},
	DefaultType:     "solido",
	ApproxWeights: map[string]map[string]float64{
		"cucchiaio":  {"solido": 20, "olio": 13, "burro": 14, "farina": 15, "zucchero": 20, "sale": 20, "miele": 21, "latte": 15, "acqua": 15},
		"cucchiaino": {"solido": 7, "olio": 4.5, "burro": 4.7, "farina": 5, "zucchero": 7, "sale": 6, "miele": 7},
		"tazza":      {"solido": 240, "olio": 220, "burro": 227, "farina": 120, "zucchero": 200, "riso": 185, "latte": 245, "acqua": 240},
		"bicchiere":  {"solido": 200, "latte": 205, "acqua": 200, "olio": 183},
		"pizzico":    {"solido": 0.3},
		"fetta":      {"solido": 25},
	},
	StopWords:  []string{"di", "d", "il", "lo", "la", "i", "gli", "le", "un", "una", "uno", "e", "con", "fresco", "fresca", "a", "per", "q.b."},
	Separators: []string{"e"},
	Fillers:    []string{"di", "d"},
}
