package services

import "strings"

// crisisPhrases is the fixed set of high-risk phrases. Matching is substring
// based: over-triggering on longer sentences is acceptable, under-triggering
// is not.
var crisisPhrases = []string{
	"kill myself",
	"end my life",
	"want to die",
	"suicide",
	"self harm",
	"hurting myself",
}

// CrisisResource is one entry in the fixed crisis-contact list surfaced when
// an emergency is detected.
type CrisisResource struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Text  string `json:"text,omitempty"`
	URL   string `json:"url"`
}

var crisisResources = []CrisisResource{
	{Name: "Suicide Prevention Lifeline", Phone: "988", URL: "https://988lifeline.org"},
	{Name: "Crisis Text Line", Text: "HOME to 741741", URL: "https://www.crisistextline.org"},
	{Name: "Trevor Project (LGBTQ+)", Phone: "1-866-488-7386", URL: "https://www.thetrevorproject.org"},
}

// CrisisReply is the fixed reply shown instead of a generated response.
const CrisisReply = "I want you to know you're not alone. Here are immediate resources that can help:"

// DetectCrisis reports whether the text contains any configured crisis
// phrase, case-insensitively. Pure function; it must run before any network
// call and is never bypassed by a failed or slow remote request.
func DetectCrisis(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range crisisPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// CrisisResources returns the fixed crisis-contact list.
func CrisisResources() []CrisisResource {
	out := make([]CrisisResource, len(crisisResources))
	copy(out, crisisResources)
	return out
}
