package classifier

import (
	"regexp"
	"strings"

	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

const (
	HintInvoice = "invoice"
	HintRefund  = "refund"
	HintRestart = "restart"
	HintStatus  = "status"
)

// Checked in order; the first category with a matching keyword wins.
var keywordSets = []struct {
	issue    statex.IssueType
	keywords []string
}{
	{statex.IssueBilling, []string{"refund", "invoice", "bill", "payment"}},
	{statex.IssueTechnical, []string{"error", "crash", "down", "restart", "bug", "technical"}},
}

var (
	refundIntentPattern  = regexp.MustCompile(`(?i)refund|chargeback|money back`)
	restartIntentPattern = regexp.MustCompile(`(?i)restart|crash|down|error`)
)

// Classify maps an utterance onto an issue category by case-insensitive
// substring match. It never fails: unmatched text is general.
func Classify(text string) statex.IssueType {
	t := strings.ToLower(text)
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(t, kw) {
				return set.issue
			}
		}
	}
	return statex.IssueGeneral
}

// HintFor derives the routing hint a responder uses to pick its action.
// The general responder receives the raw text.
func HintFor(issue statex.IssueType, text string) string {
	switch issue {
	case statex.IssueBilling:
		if refundIntentPattern.MatchString(text) {
			return HintRefund
		}
		return HintInvoice
	case statex.IssueTechnical:
		if restartIntentPattern.MatchString(text) {
			return HintRestart
		}
		return HintStatus
	default:
		return text
	}
}
