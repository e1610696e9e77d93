// Package validation classifies raw text fragments extracted from PDS
// spreadsheets as genuine field values or extraction noise, and filters
// candidate records down to validated entries.
package validation

import (
	"regexp"
	"strings"
)

// Kind identifies the field a fragment was extracted for.
type Kind string

const (
	KindEligibility   Kind = "eligibility"
	KindReferenceName Kind = "reference_name"
	KindReferenceData Kind = "reference_data"
)

type verdict int

const (
	reject verdict = iota
	accept
)

// rule pairs a predicate with its verdict. Rules for a kind apply in
// order and the first match decides.
type rule struct {
	name    string
	match   func(string) bool
	verdict verdict
}

var (
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}( \d{2}:\d{2}:\d{2})?$`)
	slashDatePattern  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	numericPattern    = regexp.MustCompile(`^\d+([.,]\d+)*$`)
	agencyIDPattern   = regexp.MustCompile(`^[A-Za-z]{2,12}\s*:\s*[0-9][0-9 -]*$`)
	alphaTokenPattern = regexp.MustCompile(`[A-Za-z]{2,}`)
	phonePattern      = regexp.MustCompile(`^(\+?63|0)\d{9,10}$`)
)

// placeholderTokens are table headers and filler cells that leak out of
// spreadsheet extraction.
var placeholderTokens = map[string]bool{
	"from":            true,
	"to":              true,
	"present":         true,
	"rating":          true,
	"inclusive dates": true,
	"n/a":             true,
	"none":            true,
}

// agencyAbbreviations are government ID issuers; a bare abbreviation is an
// ID-section label, never contact data.
var agencyAbbreviations = map[string]bool{
	"sss":        true,
	"tin":        true,
	"gsis":       true,
	"philhealth": true,
	"pagibig":    true,
	"pag-ibig":   true,
	"hdmf":       true,
	"prc":        true,
	"umid":       true,
}

// eligibilityIndicators mark a fragment as a certification or exam credential.
var eligibilityIndicators = []string{
	"eligibility",
	"eligible",
	"professional",
	"sub-professional",
	"career service",
	"civil service",
	"cse",
	"certification",
	"certificate",
	"licensure",
	"license",
	"board examination",
	"board exam",
	"ra 1080",
}

// minEligibilityLength is the shortest free text accepted as an eligibility
// when no indicator token is present.
const minEligibilityLength = 20

func isDateLike(text string) bool {
	return isoDatePattern.MatchString(text) || slashDatePattern.MatchString(text)
}

func isPureNumeric(text string) bool {
	return numericPattern.MatchString(text)
}

func isPlaceholder(text string) bool {
	lower := strings.ToLower(text)
	if placeholderTokens[lower] {
		return true
	}
	if strings.Contains(lower, "inclusive dates") {
		return true
	}
	return strings.HasPrefix(lower, "rating:")
}

func isGovernmentID(text string) bool {
	if strings.Contains(strings.ToLower(text), "government issued id") {
		return true
	}
	return agencyIDPattern.MatchString(text)
}

func isAgencyAbbreviation(text string) bool {
	return agencyAbbreviations[strings.ToLower(text)]
}

func hasAlphaToken(text string) bool {
	return alphaTokenPattern.MatchString(text)
}

func isPhoneShape(text string) bool {
	compact := strings.NewReplacer(" ", "", "-", "").Replace(text)
	return phonePattern.MatchString(compact)
}

func hasEligibilityIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range eligibilityIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func isInformativeEligibility(text string) bool {
	return len(text) >= minEligibilityLength && hasAlphaToken(text)
}

// ruleTable maps each field kind to its ordered rule list. Order carries
// the precedence: in reference_data the phone shape must come before the
// pure-numeric reject, or local numbers would never pass.
var ruleTable = map[Kind][]rule{
	KindEligibility: {
		{name: "date", match: isDateLike, verdict: reject},
		{name: "numeric", match: isPureNumeric, verdict: reject},
		{name: "placeholder", match: isPlaceholder, verdict: reject},
		{name: "government_id", match: isGovernmentID, verdict: reject},
		{name: "indicator", match: hasEligibilityIndicator, verdict: accept},
		{name: "informative", match: isInformativeEligibility, verdict: accept},
	},
	KindReferenceName: {
		{name: "date", match: isDateLike, verdict: reject},
		{name: "numeric", match: isPureNumeric, verdict: reject},
		{name: "placeholder", match: isPlaceholder, verdict: reject},
		{name: "government_id", match: isGovernmentID, verdict: reject},
		{name: "alpha_token", match: hasAlphaToken, verdict: accept},
	},
	KindReferenceData: {
		{name: "date", match: isDateLike, verdict: reject},
		{name: "placeholder", match: isPlaceholder, verdict: reject},
		{name: "phone", match: isPhoneShape, verdict: accept},
		{name: "numeric", match: isPureNumeric, verdict: reject},
		{name: "agency", match: isAgencyAbbreviation, verdict: reject},
		{name: "government_id", match: isGovernmentID, verdict: reject},
		{name: "free_text", match: hasAlphaToken, verdict: accept},
	},
}
