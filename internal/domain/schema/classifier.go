package schema

import "strings"

// FieldClass routes a raw field to a target table.
type FieldClass string

const (
	FieldClassProfile   FieldClass = "profile"
	FieldClassStatistic FieldClass = "statistic"
	FieldClassGeneric   FieldClass = "generic"
)

var profileKeywords = []string{
	"name",
	"nationality",
	"birth",
	"height",
	"weight",
	"foot",
	"positions",
	"skill",
	"workrate",
	"work_rate",
	"bodytype",
	"body_type",
	"traits",
	"specialities",
	"real_face",
	"reputation",
}

var statisticKeywords = []string{
	"goals",
	"assists",
	"appearances",
	"minutes",
	"cards",
	"yellow",
	"overall",
	"potential",
	"pace",
	"shooting",
	"passing",
	"dribbling",
	"defending",
	"physical",
	"crossing",
	"finishing",
	"heading",
	"volleys",
	"curve",
	"accuracy",
	"vision",
	"penalties",
	"composure",
	"marking",
	"tackle",
	"diving",
	"handling",
	"kicking",
	"positioning",
	"reflexes",
	"stamina",
	"strength",
	"agility",
	"balance",
	"reactions",
	"acceleration",
	"sprint",
	"clean_sheets",
	"saves",
	"rating",
}

// ClassifyField matches the raw field name case-insensitively against the
// profile keywords first, then the statistic keywords.
func ClassifyField(raw string) FieldClass {
	lowered := strings.ToLower(raw)
	if containsAny(lowered, profileKeywords) {
		return FieldClassProfile
	}
	if containsAny(lowered, statisticKeywords) {
		return FieldClassStatistic
	}
	return FieldClassGeneric
}

// Table returns the target table for the class.
func (c FieldClass) Table() Table {
	switch c {
	case FieldClassProfile:
		return TableProfiles
	case FieldClassStatistic:
		return TableStatistics
	default:
		return TablePlayers
	}
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}
