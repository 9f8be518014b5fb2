// Package classifier is the keyword-matching stand-in for the real
// intent/RAG pipeline. It maps a message to one of a fixed set of
// support categories by substring containment and returns the canned
// Algerian-Arabic response for that category.
package classifier

import "strings"

const (
	IntentGreeting   = "greeting"
	IntentStress     = "stress"
	IntentDrugs      = "drugs"
	IntentFriend     = "friend"
	IntentPrevention = "prevention"
	IntentCenters    = "centers"
	IntentGeneral    = "general"
)

// greetingHistoryMax is the history length (messages already in the
// conversation) up to which a greeting still gets the welcome reply.
const greetingHistoryMax = 2

type rule struct {
	intent   string
	keywords []string
	response string
}

// Keyword lists mix Algerian dialect, standard Arabic and English the
// way users actually type.
var greetingKeywords = []string{
	"سلام", "مرحبا", "صباح", "مساء", "كيفاش", "كيف حالك", "hello", "hi", "salam",
}

var rules = []rule{
	{
		intent: IntentStress,
		keywords: []string{
			"ضغط", "قلق", "خايف", "stress", "anxiety", "متوتر",
		},
		response: stressResponse,
	},
	{
		intent: IntentDrugs,
		keywords: []string{
			"مخدرات", "إدمان", "drugs", "addiction", "متعاطي",
		},
		response: drugsResponse,
	},
	{
		intent: IntentFriend,
		keywords: []string{
			"صاحبي", "صديقي", "قريب", "friend", "أخي",
		},
		response: friendResponse,
	},
	{
		intent: IntentPrevention,
		keywords: []string{
			"وقاية", "حماية", "prevention", "protect", "نحمي",
		},
		response: preventionResponse,
	},
	{
		intent: IntentCenters,
		keywords: []string{
			"مركز", "مستشفى", "center", "hospital", "وين نلقى",
		},
		response: centersResponse,
	},
}

// Result is one classified message.
type Result struct {
	Intent   string
	Response string
	Matched  bool
}

// Classify picks the category for message. historyLen is the number of
// messages already stored in the conversation; greetings only get the
// welcome reply at the start of a conversation. First match wins, in
// fixed rule order.
func Classify(message string, historyLen int) Result {
	lower := strings.ToLower(message)

	if historyLen <= greetingHistoryMax && containsAny(lower, greetingKeywords) {
		return Result{Intent: IntentGreeting, Response: greetingResponse, Matched: true}
	}

	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			return Result{Intent: r.intent, Response: r.response, Matched: true}
		}
	}

	return Result{Intent: IntentGeneral, Response: defaultResponse, Matched: false}
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
