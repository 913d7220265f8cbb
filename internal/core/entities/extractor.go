// Package entities pulls structured facts out of unstructured document text
// via pattern matching. Patterns run over the original-case text so that
// proper nouns survive; every output list preserves first-seen order, is
// de-duplicated by exact string equality and capped per field.
package entities

import (
	"regexp"
	"strings"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

const (
	maxDates       = 5
	maxAmounts     = 3
	maxNames       = 5
	maxCaseNumbers = 4
	maxPhones      = 4
	maxEmails      = 4
	maxAddresses   = 2
	maxSkills      = 10
	maxEducation   = 5
	maxExperience  = 3

	maxAddressLen   = 100
	maxSkillItemLen = 30

	resumeIndicatorThreshold = 3
)

var (
	// Numeric dates validate day 01-31 and month 01-12 in the pattern itself.
	reDateNumeric = regexp.MustCompile(`\b(?:0?[1-9]|[12][0-9]|3[01])[/-](?:0?[1-9]|1[0-2])[/-](?:\d{4}|\d{2})\b`)
	reDateEnglish = regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{2,4}\b`)
	reDateHindi   = regexp.MustCompile(`\b\d{1,2}\s+(?:जनवरी|फरवरी|मार्च|अप्रैल|मई|जून|जुलाई|अगस्त|सितंबर|अक्टूबर|नवंबर|दिसंबर)\s+\d{2,4}`)

	reAmountPrefixed = regexp.MustCompile(`(?i)(?:rs\.?|₹|inr)\s*([0-9,]+(?:\.[0-9]+)?)`)
	reAmountSuffixed = regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]+)?)\s*(?:rupees|रुपये)`)

	rePhone = regexp.MustCompile(`\b(?:\+91[\s-]?)?[6-9]\d{9}\b`)
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	reCaseNumber = regexp.MustCompile(`(?i)(?:case\s*no|ref\s*no|file\s*no|केस\s*नं)[.:]*\s*([A-Za-z0-9/-]+)`)
	reFIRNumber  = regexp.MustCompile(`(?i)(?:fir\s*no|एफआईआर)[.:]*\s*([0-9/-]+)`)

	// Labels match case-insensitively but the captured tokens must be
	// capitalized; this is why extraction runs over original-case text.
	reNameLabeled   = regexp.MustCompile(`(?i:name|नाम|applicant|complainant|petitioner|respondent)[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})`)
	reNameHonorific = regexp.MustCompile(`(?i:mr\.|ms\.|mrs\.|shri|smt\.?|श्री|श्रीमती)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})`)

	// Addresses anchor on a 6-digit postal code and capture preceding text.
	reAddress = regexp.MustCompile(`(?i)[A-Za-z0-9,.\s-]+(?:pin|पिन)?[:\s]*\d{6}`)

	reSkillSection = regexp.MustCompile(`(?i)(?:skills|technical\s*skills|कौशल)[:\s]*([^\n]+(?:\n[^\n]+){0,5})`)
	reSkillSplit   = regexp.MustCompile(`[,;•\n|]`)
	reEducation    = regexp.MustCompile(`(?i)(?:b\.?tech|m\.?tech|b\.?e|m\.?e|b\.?sc|m\.?sc|b\.?a|m\.?a|b\.?com|m\.?com|mba|bba|ph\.?d|12th|10th|graduation|post.?graduation)`)
	reExperience   = regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`)
)

var resumeIndicators = []string{
	"resume", "cv", "curriculum vitae", "objective", "experience",
	"education", "skills", "qualifications", "career",
	"रिज़्यूमे", "अनुभव", "शिक्षा", "योग्यता",
}

// Extract runs every field pattern over the text.
func Extract(text string) domain.ExtractedEntities {
	e := domain.ExtractedEntities{
		Dates:       Dates(text),
		Amounts:     amounts(text),
		Phones:      matchCapped(text, maxPhones, rePhone),
		Emails:      matchCapped(text, maxEmails, reEmail),
		CaseNumbers: groupsCapped(text, maxCaseNumbers, reCaseNumber, reFIRNumber),
		Names:       groupsCapped(text, maxNames, reNameLabeled, reNameHonorific),
		Addresses:   addresses(text),
		IsResume:    IsResumeLike(text),
	}

	if e.IsResume {
		e.Skills = skills(text)
		e.Education = matchCapped(text, maxEducation, reEducation)
		e.Experience = matchCapped(text, maxExperience, reExperience)
	}
	return e
}

// Dates merges the three validated date patterns, de-duplicated and capped.
// Exported because the key-point extractor uses the same validated family.
func Dates(text string) []string {
	return matchCapped(text, maxDates, reDateNumeric, reDateEnglish, reDateHindi)
}

// IsResumeLike reports whether the text carries at least three distinct
// resume-indicator keywords. Independent of the classifier's own resume check.
func IsResumeLike(text string) bool {
	lower := strings.ToLower(text)
	n := 0
	for _, kw := range resumeIndicators {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n >= resumeIndicatorThreshold
}

func amounts(text string) []string {
	out := make([]string, 0, maxAmounts)
	seen := map[string]bool{}
	for _, re := range []*regexp.Regexp{reAmountPrefixed, reAmountSuffixed} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			out = appendCapped(out, seen, m[1], maxAmounts)
		}
	}
	return out
}

func addresses(text string) []string {
	out := make([]string, 0, maxAddresses)
	seen := map[string]bool{}
	for _, m := range reAddress.FindAllString(text, -1) {
		out = appendCapped(out, seen, truncateRunes(strings.TrimSpace(m), maxAddressLen), maxAddresses)
	}
	return out
}

func skills(text string) []string {
	m := reSkillSection.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	out := make([]string, 0, maxSkills)
	seen := map[string]bool{}
	for _, item := range reSkillSplit.Split(m[1], -1) {
		item = strings.TrimSpace(item)
		if item == "" || len([]rune(item)) >= maxSkillItemLen {
			continue
		}
		out = appendCapped(out, seen, item, maxSkills)
	}
	return out
}

func matchCapped(text string, limit int, patterns ...*regexp.Regexp) []string {
	out := make([]string, 0, limit)
	seen := map[string]bool{}
	for _, re := range patterns {
		for _, m := range re.FindAllString(text, -1) {
			out = appendCapped(out, seen, m, limit)
		}
	}
	return out
}

func groupsCapped(text string, limit int, patterns ...*regexp.Regexp) []string {
	out := make([]string, 0, limit)
	seen := map[string]bool{}
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			out = appendCapped(out, seen, m[1], limit)
		}
	}
	return out
}

func appendCapped(dst []string, seen map[string]bool, v string, limit int) []string {
	if v == "" || seen[v] || len(dst) >= limit {
		return dst
	}
	seen[v] = true
	return append(dst, v)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
