package models

import "strings"

type KnowledgeEntry struct {
	ID       int    `db:"id" json:"id" yaml:"id"`
	Question string `db:"question" json:"question" yaml:"question"`
	Answer   string `db:"answer" json:"answer" yaml:"answer"`
	Category string `db:"category" json:"category" yaml:"category"`
}

// Category keys used by the seed knowledge base.
const (
	CategoryStatusMaintenance = "status_maintenance"
	CategoryEmployment        = "employment"
	CategoryAcademic          = "academic"
	CategoryTravel            = "travel"
	CategoryHealthInsurance   = "health_insurance"
	CategoryProgramExtension  = "program_extension"
)

var categoryLabels = map[string]string{
	CategoryStatusMaintenance: "Status Maintenance",
	CategoryEmployment:        "Employment",
	CategoryAcademic:          "Academic",
	CategoryTravel:            "Travel",
	CategoryHealthInsurance:   "Health Insurance",
	CategoryProgramExtension:  "Program Extension",
}

// CategoryLabel returns the display label for a category key. Unknown keys
// get underscores replaced and each word capitalised.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}

	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
