// Package keypoints produces the short labeled facts and validated dates shown
// at the top of an analysis.
package keypoints

import (
	"regexp"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/entities"
)

const maxKeyPoints = 6

const dateDescription = "दस्तावेज़ में उल्लेखित तिथि"

type labeledPattern struct {
	re     *regexp.Regexp
	prefix string
}

// Evaluated in order; each contributes at most one fact.
var patterns = []labeledPattern{
	{regexp.MustCompile(`(?i)(?:case\s*no|केस\s*नं|प्रकरण\s*क्रमांक)[.:]*\s*([A-Za-z0-9/-]+)`), "केस नंबर: "},
	{regexp.MustCompile(`(?i)(?:धारा|section|u/s)\s*([0-9]+(?:\s*[,/]\s*[0-9]+)*)`), "धारा: "},
	{regexp.MustCompile(`(?i)(?:रु|rs|₹|rupees)[.:]*\s*([0-9,]+)`), "राशि: ₹"},
	{regexp.MustCompile(`(?i)(?:खसरा|plot|प्लॉट|खाता)\s*(?:नं|no|नंबर)?[.:]*\s*([0-9/-]+)`), "खसरा/प्लॉट नंबर: "},
	{regexp.MustCompile(`(?i)(?:fir\s*no|एफआईआर)[.:]*\s*([0-9/-]+)`), "FIR नंबर: "},
}

var typeFacts = map[domain.DocumentType][]string{
	domain.TypeLegalNotice:      {"यह कानूनी नोटिस है", "जवाब देना ज़रूरी है"},
	domain.TypeFIR:              {"यह पुलिस FIR है", "कानूनी कार्यवाही शुरू"},
	domain.TypeCourtOrder:       {"यह न्यायालय का आदेश है", "पालन अनिवार्य है"},
	domain.TypeLandRecord:       {"यह भूमि रिकॉर्ड है", "मालिकाना हक़ का प्रमाण"},
	domain.TypeGovernmentLetter: {"यह सरकारी पत्र है", "समय सीमा का ध्यान रखें"},
	domain.TypeAgreement:        {"यह समझौता पत्र है", "शर्तें बाध्यकारी हैं"},
	domain.TypeResume:           {"यह एक रिज़्यूमे/CV है", "योग्यता और अनुभव प्रदर्शित करें"},
}

var defaultFacts = []string{"दस्तावेज़ को ध्यान से पढ़ें", "ज़रूरत हो तो वकील से सलाह लें"}

// KeyPoints returns at most six labeled facts: one per matched pattern, then
// the static per-type facts.
func KeyPoints(text string, docType domain.DocumentType) []string {
	points := make([]string, 0, maxKeyPoints)
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			points = append(points, p.prefix+m[1])
		}
	}

	facts, ok := typeFacts[docType]
	if !ok {
		facts = defaultFacts
	}
	points = append(points, facts...)

	if len(points) > maxKeyPoints {
		points = points[:maxKeyPoints]
	}
	return points
}

// Dates wraps the validated date matches with a generic description.
func Dates(text string) []domain.ImportantDate {
	found := entities.Dates(text)
	dates := make([]domain.ImportantDate, 0, len(found))
	for _, d := range found {
		dates = append(dates, domain.ImportantDate{Date: d, Description: dateDescription})
	}
	return dates
}
