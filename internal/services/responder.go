package services

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ReplyCategory is the tagged variant a fallback reply is drawn from.
type ReplyCategory string

const (
	CategoryAnxiety    ReplyCategory = "anxiety"
	CategorySadness    ReplyCategory = "sadness"
	CategoryDepression ReplyCategory = "depression"
	CategoryMotivation ReplyCategory = "motivation"
	CategoryRelaxation ReplyCategory = "relaxation"
	CategoryDefault    ReplyCategory = "default"
)

// keywordRule pairs a category with the keywords that select it. Rules are
// evaluated in order, first match wins, so the priority is explicit data
// rather than if/else ordering.
type keywordRule struct {
	Category ReplyCategory
	Keywords []string
}

var keywordRules = []keywordRule{
	{CategoryAnxiety, []string{"anxious", "anxiety", "worry"}},
	{CategorySadness, []string{"sad", "down", "crying"}},
	{CategoryDepression, []string{"depress", "hopeless", "empty"}},
	{CategoryMotivation, []string{"motivat", "energy", "lazy"}},
	{CategoryRelaxation, []string{"relax", "calm", "stress"}},
}

var replyPools = map[ReplyCategory][]string{
	CategoryAnxiety: {
		"I understand you're feeling anxious. That's completely valid. Try taking slow, deep breaths - in for 4 counts, hold for 4, out for 4. 🌱",
		"Anxiety can feel overwhelming, but remember it's temporary. You've gotten through difficult times before. 💚",
		"When anxiety hits, try grounding yourself: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.",
	},
	CategorySadness: {
		"I hear that you're feeling sad. It's okay to feel this way - your emotions are valid. 🤗",
		"Sadness is natural. Be gentle with yourself today. What's one small thing that usually brings you comfort?",
		"I'm here to listen. Feelings come and go like waves. You don't have to carry this alone.",
	},
	CategoryDepression: {
		"Thank you for sharing. Depression can make everything harder, but reaching out shows incredible strength. 🌟",
		"Depression can make simple tasks overwhelming. Remember to celebrate small victories - even getting through today counts.",
		"You deserve support. Depression is treatable. Have you been able to connect with any mental health resources?",
	},
	CategoryMotivation: {
		"Everyone needs motivation sometimes! What's one small step you could take today? 💪",
		"Motivation often comes after action. What's the tiniest thing you could do right now?",
		"Remember why you started. Your goals matter, and so do you. Progress isn't always linear. 🌱",
	},
	CategoryRelaxation: {
		"Let's focus on relaxation. Try this: breathe in for 4, hold for 4, exhale for 6. Repeat. 🧘‍♀️",
		"Relaxation is a skill. Try progressive muscle relaxation - tense and release each muscle group.",
		"Create peace: dim lights, play calming music, or step outside. What sounds appealing right now?",
	},
	CategoryDefault: {
		"I'm here to listen and support you. Could you tell me more about what's on your mind? 💚",
		"Thank you for sharing. Your feelings matter. What would be most helpful right now?",
		"Sometimes talking helps provide relief. How are you taking care of yourself today?",
		"You have a lot on your mind. What feels most important to address right now?",
	},
}

var (
	responderRandMu sync.Mutex
	responderRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// ClassifyMessage resolves the input to a reply category. Deterministic:
// the same keywords always select the same category.
func ClassifyMessage(text string) ReplyCategory {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return CategoryDefault
}

// FallbackReply produces a local reply when the companion relay is
// unavailable: category selection is deterministic, the template within the
// pool is chosen uniformly at random.
func FallbackReply(text string) (string, ReplyCategory) {
	category := ClassifyMessage(text)
	pool := replyPools[category]

	responderRandMu.Lock()
	reply := pool[responderRand.Intn(len(pool))]
	responderRandMu.Unlock()

	return reply, category
}

// ReplyPool returns a copy of the template pool for a category.
func ReplyPool(category ReplyCategory) []string {
	pool := replyPools[category]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}
