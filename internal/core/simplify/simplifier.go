// Package simplify renders extracted document text as a plain-Hindi
// explanation. It tries the configured AI capability once and falls back to a
// deterministic rule-based summary; the fallback itself cannot fail, so
// Simplify is a total function.
package simplify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/entities"
	"github.com/nyaysathi/nyaysathi/internal/core/ports"
	"github.com/nyaysathi/nyaysathi/internal/core/textutil"
)

const excerptLimit = 500

type Simplifier struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// New builds a Simplifier. generator may be nil; the rule-based path is then
// the only path.
func New(generator ports.TextGenerator, logger *slog.Logger) *Simplifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simplifier{generator: generator, logger: logger}
}

func (s *Simplifier) Simplify(ctx context.Context, text string, docType domain.DocumentType) domain.SimplifiedExplanation {
	if s.generator != nil {
		out, err := s.generator.Generate(ctx, buildPrompt(text, docType))
		switch {
		case err != nil:
			s.logger.Warn("ai simplification failed, using rule-based fallback",
				"document_type", docType, "error", err)
		case strings.TrimSpace(out) == "":
			s.logger.Warn("ai simplification returned empty response, using rule-based fallback",
				"document_type", docType)
		default:
			return domain.SimplifiedExplanation{Text: out, Source: domain.SourceAI}
		}
	}

	return domain.SimplifiedExplanation{
		Text:   ruleBasedSummary(text, docType),
		Source: domain.SourceRuleBased,
	}
}

var typeHeaders = map[domain.DocumentType]string{
	domain.TypeLegalNotice:      "📋 यह एक कानूनी नोटिस है",
	domain.TypeFIR:              "📋 यह एक FIR (प्रथम सूचना रिपोर्ट) है",
	domain.TypeCourtOrder:       "📋 यह न्यायालय का आदेश है",
	domain.TypeLandRecord:       "📋 यह भूमि/जमीन संबंधित दस्तावेज़ है",
	domain.TypeGovernmentLetter: "📋 यह सरकारी पत्र है",
	domain.TypeAgreement:        "📋 यह समझौता/अनुबंध पत्र है",
	domain.TypeResume:           "🎓 यह एक रिज़्यूमे/CV है",
	domain.TypeGeneral:          "📋 दस्तावेज़ की जानकारी",
}

// Short per-type suggestions shown at the end of the rule-based summary.
// Distinct from the recommendation engine's full action lists.
var typeSuggestions = map[domain.DocumentType][]string{
	domain.TypeLegalNotice:      {"इस नोटिस का जवाब 15-30 दिन में दें", "वकील से सलाह लें", "NALSA हेल्पलाइन: 15100"},
	domain.TypeFIR:              {"FIR की कॉपी सुरक्षित रखें", "वकील से तुरंत मिलें", "धाराओं के बारे में जानकारी लें"},
	domain.TypeCourtOrder:       {"आदेश का पालन करें", "अगली तारीख याद रखें", "वकील से मिलें"},
	domain.TypeLandRecord:       {"तहसील से सत्यापित करें", "मूल दस्तावेज़ सुरक्षित रखें", "पटवारी से मिलें"},
	domain.TypeGovernmentLetter: {"समय सीमा का ध्यान रखें", "संबंधित कार्यालय से संपर्क करें", "लिखित जवाब दें"},
	domain.TypeAgreement:        {"सभी शर्तें ध्यान से पढ़ें", "एक कॉपी अपने पास रखें", "वकील से जाँच करवाएं"},
	domain.TypeResume:           {"अपनी योग्यता सही तरीके से प्रस्तुत करें", "सभी दस्तावेज़ों की कॉपी तैयार रखें", "संपर्क जानकारी सही होनी चाहिए"},
	domain.TypeGeneral:          {"दस्तावेज़ सुरक्षित रखें", "यदि कानूनी है तो वकील से मिलें", "NALSA हेल्पलाइन: 15100"},
}

// ruleBasedSummary composes a fixed-structure summary from whatever the entity
// extractor actually found. Fully deterministic.
func ruleBasedSummary(text string, docType domain.DocumentType) string {
	info := entities.Extract(text)

	var b strings.Builder
	header, ok := typeHeaders[docType]
	if !ok {
		header = typeHeaders[domain.TypeGeneral]
	}
	b.WriteString(header)
	b.WriteString("\n\n📝 दस्तावेज़ में पाई गई जानकारी:\n")

	found := false
	writeItem := func(label string, values []string, limit int) {
		if len(values) == 0 {
			return
		}
		if len(values) > limit {
			values = values[:limit]
		}
		b.WriteString("• " + label + ": " + strings.Join(values, ", ") + "\n")
		found = true
	}

	writeItem("नाम", info.Names, 5)
	writeItem("तारीख", info.Dates, 3)
	if len(info.Amounts) > 0 {
		prefixed := make([]string, 0, 3)
		for _, a := range info.Amounts {
			prefixed = append(prefixed, "₹"+a)
			if len(prefixed) == 3 {
				break
			}
		}
		writeItem("राशि", prefixed, 3)
	}
	writeItem("संदर्भ/केस नंबर", info.CaseNumbers, 2)
	writeItem("फोन नंबर", info.Phones, 2)
	writeItem("ईमेल", info.Emails, 2)
	if len(info.Addresses) > 0 {
		writeItem("पता", info.Addresses[:1], 1)
	}

	if info.IsResume {
		b.WriteString("\n🎓 यह एक रिज़्यूमे/CV लग रहा है:\n")
		writeItem("कौशल", info.Skills, 5)
		writeItem("शिक्षा", info.Education, 2)
		writeItem("अनुभव", info.Experience, 2)
	}

	if !found {
		b.WriteString("• दस्तावेज़ में विशेष जानकारी नहीं मिली\n")
	}

	b.WriteString("\n📄 टेक्स्ट का सारांश:\n")
	excerpt := textutil.TruncateRunes(textutil.NormalizeWhitespace(text), excerptLimit)
	b.WriteString("'" + excerpt + "...'\n")

	b.WriteString("\n✅ सुझाव:\n")
	suggestions, ok := typeSuggestions[docType]
	if !ok {
		suggestions = typeSuggestions[domain.TypeGeneral]
	}
	for _, s := range suggestions {
		b.WriteString("• " + s + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
