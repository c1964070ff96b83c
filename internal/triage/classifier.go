// Package triage maps free-text user messages to a response category via
// ordered keyword rules. The rule order is a safety policy: crisis
// categories must preempt everything else no matter which other keywords
// co-occur in the message.
package triage

import "strings"

// Result is the classifier's verdict for one message.
type Result struct {
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

// Rule pairs a keyword group with the category it selects. Rules are
// evaluated top to bottom; the first group with any keyword appearing as a
// substring of the lowercased message wins.
type Rule struct {
	Category       string
	Recommendation string
	Keywords       []string
}

// Rules is the fixed priority order. Do not reorder: emergency and
// mental_crisis must stay ahead of every non-crisis category.
var Rules = []Rule{
	{
		Category:       "emergency",
		Recommendation: "Call 911 now. If this is an overdose, naloxone is available at Harbor Free Clinic and most pharmacies.",
		Keywords: []string{
			"overdose", "overdosing", "not breathing", "unconscious",
			"violence", "violent", "attacked", "assault", "weapon",
			"bleeding", "danger", "unsafe",
		},
	},
	{
		Category:       "mental_crisis",
		Recommendation: "You matter. Call or text 988 (Suicide & Crisis Lifeline) right now to talk with someone.",
		Keywords: []string{
			"suicide", "suicidal", "kill myself", "end my life",
			"self-harm", "self harm", "hurt myself", "want to die",
		},
	},
	{
		Category:       "medical",
		Recommendation: "Harbor Free Clinic takes walk-ins Wed/Fri 1-5pm; for urgent symptoms go to the nearest ER.",
		Keywords: []string{
			"medical", "clinic", "doctor", "nurse", "injury", "injured",
			"infection", "sick", "wound", "medication", "prescription", "pain",
		},
	},
	{
		Category:       "housing",
		Recommendation: "Lake Union Women's Shelter intake runs 4-8pm; call 211 for tonight's open beds countywide.",
		Keywords: []string{
			"housing", "shelter", "homeless", "evicted", "eviction",
			"nowhere to sleep", "need a bed", "sleeping outside", "tent",
		},
	},
	{
		Category:       "id",
		Recommendation: "The DMV fee-waiver program and birth certificate help are available; bring any mail with your name on it.",
		Keywords: []string{
			"identification", "id card", "lost my id", "need an id", "need id",
			"license", "dmv", "birth certificate", "social security card",
		},
	},
	{
		Category:       "food",
		Recommendation: "Vale Community Food Bank is open Mon-Sat 9am-3pm, no ID required; hot meals daily downtown.",
		Keywords: []string{
			"food", "hungry", "meal", "meals", "groceries", "food bank",
			"soup", "eat today",
		},
	},
	{
		Category:       "detox",
		Recommendation: "Cedar River Healing Lodge runs a 24/7 intake line for withdrawal management and sobering support.",
		Keywords: []string{
			"detox", "withdrawal", "sobering", "get sober", "stop drinking",
			"stop using", "substance",
		},
	},
	{
		Category:       "mental_health",
		Recommendation: "Free counseling and behavioral health services are available; no insurance needed at community clinics.",
		Keywords: []string{
			"mental", "anxiety", "anxious", "depressed", "depression",
			"counseling", "therapy", "therapist", "lonely", "stressed",
		},
	},
}

const (
	// CategoryGeneral is returned when no rule matches.
	CategoryGeneral = "general"

	generalRecommendation = "Tell us a bit more about what you need, or browse the full service list."
)

// Classify runs the message through the rule list and returns the first
// matching category. Never errors; an unmatched message is "general".
func Classify(message string) Result {
	msg := strings.ToLower(message)
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return Result{Category: rule.Category, Recommendation: rule.Recommendation}
			}
		}
	}
	return Result{Category: CategoryGeneral, Recommendation: generalRecommendation}
}
