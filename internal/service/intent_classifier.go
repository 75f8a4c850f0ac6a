package service

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	IntentGreeting          = "greeting"
	IntentEmployment        = "employment"
	IntentI20               = "i20"
	IntentVisa              = "visa"
	IntentStatusMaintenance = "status_maintenance"
	IntentTravel            = "travel"
	IntentAcademic          = "academic"
)

const (
	ConfidenceGreeting   = 0.95
	ConfidenceEmployment = 0.85
	ConfidenceTravel     = 0.82
	ConfidenceI20        = 0.80
	ConfidenceVisa       = 0.80
	ConfidenceAcademic   = 0.78
	ConfidenceStatus     = 0.75
	ConfidenceDefault    = 0.5
)

// Classification is the classifier's answer. Intent is empty when no topic matched.
type Classification struct {
	ResponseText string
	Intent       string
	Confidence   float64
}

const defaultResponse = "That's a good question about F-1 student visas. For specific advice tailored to your situation, " +
	"I recommend contacting your university's Designated School Official (DSO) or International Student Office. " +
	"They can provide guidance based on your specific circumstances and university policies."

var greetingPattern = regexp.MustCompile(`^(hi\b|hello\b|hey\b|greetings|good\s*(morning|afternoon|evening)|howdy\b)`)

var greetingReplies = []string{
	"Hello! How can I assist you with your F1 visa questions today?",
	"Hi there! I'm here to help with any F1 visa related questions you might have.",
	"Greetings! What would you like to know about F1 visa regulations?",
	"Hello! I'm the F1 Monk. What questions do you have about studying in the US?",
}

type subRule struct {
	keywords []string
	response string
}

type topicRule struct {
	intent     string
	confidence float64
	keywords   []string
	subRules   []subRule
	response   string
}

const optGeneric = "OPT (Optional Practical Training) allows F-1 students to work in their field of study for up to 12 months " +
	"after completing their program. STEM degree holders may be eligible for a 24-month extension."

// topicRules is evaluated top to bottom; the first topic with a matching
// keyword answers, using its first matching sub-rule or its generic response.
var topicRules = []topicRule{
	{
		intent:     IntentEmployment,
		confidence: ConfidenceEmployment,
		keywords:   []string{"opt", "optional practical training"},
		subRules: []subRule{
			{
				keywords: []string{"apply", "application", "how"},
				response: "To apply for OPT, you need to:\n\n" +
					"1. Request an I-20 recommendation from your DSO\n" +
					"2. File Form I-765 with USCIS\n" +
					"3. Pay the application fee\n" +
					"4. Submit supporting documents including photos and copies of your immigration documents\n\n" +
					"The application window opens 90 days before your program end date and closes 60 days after.",
			},
			{
				keywords: []string{"documents", "need"},
				response: "For OPT applications, you'll need:\n\n" +
					"- Form I-765\n" +
					"- OPT I-20 with DSO recommendation\n" +
					"- Application fee payment\n" +
					"- Two passport-style photos\n" +
					"- Copy of your passport\n" +
					"- Copy of your visa\n" +
					"- Copy of your I-94\n" +
					"- Copies of previous EADs (if applicable)",
			},
			{
				keywords: []string{"time", "processing", "long"},
				response: "OPT processing times typically range from 90 to 150 days. USCIS provides case status updates " +
					"on their website. You cannot begin working until you receive your EAD card.",
			},
		},
		response: optGeneric,
	},
	{
		intent:     IntentI20,
		confidence: ConfidenceI20,
		keywords:   []string{"i-20", "i20"},
		subRules: []subRule{
			{
				keywords: []string{"extend", "extension"},
				response: "To extend your I-20:\n\n" +
					"1. Contact your DSO before the document expires\n" +
					"2. Provide academic justification for the extension\n" +
					"3. Show updated financial documentation\n" +
					"4. Your DSO will issue a new I-20 with the extended end date\n\n" +
					"You must apply before your current I-20 expires or you'll fall out of status.",
			},
			{
				keywords: []string{"travel", "signature"},
				response: "For international travel, ensure your I-20 has a valid travel signature on page 2. " +
					"This signature is typically valid for 12 months while you're in an active program, or 6 months " +
					"while on OPT. Request a new signature from your DSO before traveling if needed.",
			},
		},
		response: "Your I-20 is a critical document that certifies your eligibility for F-1 status. It contains your " +
			"program information, funding details, and SEVIS ID. Always keep it valid and with you when traveling internationally.",
	},
	{
		intent:     IntentEmployment,
		confidence: ConfidenceEmployment,
		keywords:   []string{"cpt", "curricular practical training"},
		response: "Curricular Practical Training (CPT) is work authorization for F-1 students that's an integral part " +
			"of your curriculum. To qualify:\n\n" +
			"1. You must have completed one academic year (exceptions exist for graduate programs requiring immediate CPT)\n" +
			"2. The internship/job must be related to your major\n" +
			"3. You must receive academic credit or the training must be required for your degree\n\n" +
			"Your DSO must authorize CPT on your I-20 before you begin working.",
	},
	{
		intent:     IntentVisa,
		confidence: ConfidenceVisa,
		keywords:   []string{"visa"},
		subRules: []subRule{
			{
				keywords: []string{"renew", "renewal"},
				response: "To renew your F-1 visa:\n\n" +
					"1. Your I-20 must be valid and have a recent travel signature\n" +
					"2. Schedule an appointment at a U.S. consulate (preferably in your home country)\n" +
					"3. Pay the visa application fee\n" +
					"4. Complete the DS-160 form\n" +
					"5. Attend your visa interview with all required documents\n\n" +
					"Note that you cannot renew an F-1 visa while inside the United States.",
			},
			{
				keywords: []string{"interview"},
				response: "For your F-1 visa interview, prepare to discuss:\n\n" +
					"1. Your study plans and why you chose your specific program\n" +
					"2. How your studies fit into your career plans\n" +
					"3. Your ties to your home country\n" +
					"4. Your financial ability to support yourself\n\n" +
					"Bring all required documents including your I-20, financial proof, and acceptance letter.",
			},
		},
		response: "The F-1 visa allows you to enter the U.S. as a student. While your visa can expire while you're in " +
			"the U.S., your F-1 status can remain valid as long as you maintain a valid I-20 and follow all F-1 regulations.",
	},
	{
		intent:     IntentStatusMaintenance,
		confidence: ConfidenceStatus,
		keywords:   []string{"maintain", "status", "full time", "fulltime"},
		response: "To maintain F-1 status:\n\n" +
			"1. Maintain full-time enrollment (12+ credits for undergrads, 9+ for graduates)\n" +
			"2. Make normal academic progress toward your degree\n" +
			"3. Only work with proper authorization\n" +
			"4. Keep your I-20 valid and current\n" +
			"5. Maintain valid health insurance\n" +
			"6. Report any changes in address or major to your DSO\n" +
			"7. Don't stay in the U.S. beyond your grace period\n\n" +
			"Violating these requirements can lead to status termination.",
	},
	{
		intent:     IntentTravel,
		confidence: ConfidenceTravel,
		keywords:   []string{"travel", "vacation"},
		response: "F-1 students can travel outside the US during their program, but must have a valid visa, I-20 signed " +
			"for travel within the last year, and proof of enrollment to re-enter. Always check travel advisories " +
			"before planning international travel.",
	},
	{
		intent:     IntentAcademic,
		confidence: ConfidenceAcademic,
		keywords:   []string{"credit", "course", "class"},
		response: "F-1 students must maintain full-time enrollment, which typically means at least 12 credit hours for " +
			"undergraduates and 9 for graduates per semester. Exceptions may be granted by your DSO for specific circumstances.",
	},
	{
		intent:     IntentEmployment,
		confidence: ConfidenceEmployment,
		keywords:   []string{"work"},
		response:   optGeneric,
	},
}

// IntentClassifier answers questions the knowledge base could not match,
// using fixed keyword tiers. Only greeting selection is random.
type IntentClassifier struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// NewIntentClassifier uses rng for greeting selection; a nil rng is seeded from the clock.
func NewIntentClassifier(rng *rand.Rand, logger *zap.Logger) *IntentClassifier {
	if rng == nil {
		rng = NewSeededRand(uint64(time.Now().UnixNano()))
	}
	return &IntentClassifier{
		rng:    rng,
		logger: logger,
	}
}

// NewSeededRand returns a deterministic random source for greeting selection.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Classify always returns exactly one tier's output; unmatched input falls to the default tier.
func (c *IntentClassifier) Classify(input string) Classification {
	text := strings.ToLower(strings.TrimSpace(input))

	if greetingPattern.MatchString(text) {
		return Classification{
			ResponseText: c.pickGreeting(),
			Intent:       IntentGreeting,
			Confidence:   ConfidenceGreeting,
		}
	}

	for _, rule := range topicRules {
		if !containsAny(text, rule.keywords) {
			continue
		}

		response := rule.response
		for _, sub := range rule.subRules {
			if containsAny(text, sub.keywords) {
				response = sub.response
				break
			}
		}

		c.logger.Debug("Intent classified",
			zap.String("intent", rule.intent),
			zap.Float64("confidence", rule.confidence),
		)
		return Classification{
			ResponseText: response,
			Intent:       rule.intent,
			Confidence:   rule.confidence,
		}
	}

	return Classification{
		ResponseText: defaultResponse,
		Confidence:   ConfidenceDefault,
	}
}

func (c *IntentClassifier) pickGreeting() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return greetingReplies[c.rng.IntN(len(greetingReplies))]
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
