// Package recommend maps a document type to its recommended action list.
// Pure static lookup with a guaranteed non-empty default.
package recommend

import (
	"slices"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

var actionTable = map[domain.DocumentType][]string{
	domain.TypeLegalNotice: {
		"घबराएं नहीं - यह सिर्फ नोटिस है, कोर्ट केस नहीं",
		"जिला विधिक सेवा प्राधिकरण से मुफ्त सलाह लें",
		"15-30 दिन में जवाब दें",
		"सभी संबंधित कागज़ात इकट्ठा करें",
		"NALSA हेल्पलाइन 15100 पर कॉल करें",
	},
	domain.TypeFIR: {
		"FIR की कॉपी अपने पास रखें",
		"तुरंत वकील से मिलें",
		"अग्रिम जमानत के बारे में पूछें",
		"गवाहों की जानकारी इकट्ठा करें",
		"NALSA हेल्पलाइन 15100 पर कॉल करें",
	},
	domain.TypeCourtOrder: {
		"आदेश की कॉपी सुरक्षित रखें",
		"अगली तारीख नोट करें",
		"वकील से तुरंत मिलें",
		"आदेश का समय पर पालन करें",
		"अपील के बारे में वकील से पूछें",
	},
	domain.TypeLandRecord: {
		"तहसील से ताज़ा खतौनी निकालें",
		"नाम और क्षेत्रफल जाँचें",
		"कोई विवाद हो तो SDM को लिखें",
		"मूल दस्तावेज़ सुरक्षित रखें",
		"ज़रूरत हो तो राजस्व विभाग से संपर्क करें",
	},
	domain.TypeGovernmentLetter: {
		"समय सीमा का पालन करें",
		"जवाब लिखित में दें",
		"पत्र की कॉपी रखें",
		"संबंधित कार्यालय से संपर्क करें",
		"RTI से जानकारी माँग सकते हैं",
	},
	domain.TypeAgreement: {
		"सभी शर्तें ध्यान से पढ़ें",
		"जो समझ न आए, स्पष्ट करवाएं",
		"जबरदस्ती में साइन न करें",
		"गवाहों के सामने हस्ताक्षर करें",
		"एक कॉपी अपने पास रखें",
	},
	domain.TypeResume: {
		"अपनी योग्यता सही तरीके से प्रस्तुत करें",
		"सभी दस्तावेज़ों की कॉपी तैयार रखें",
		"संपर्क जानकारी सही होनी चाहिए",
		"LinkedIn या जॉब पोर्टल पर अपडेट रखें",
		"नियमित रूप से अपडेट करते रहें",
	},
}

var defaultActions = []string{
	"दस्तावेज़ को ध्यान से पढ़ें",
	"जिला विधिक सेवा प्राधिकरण से मुफ्त सलाह लें",
	"मूल दस्तावेज़ सुरक्षित रखें",
	"NALSA हेल्पलाइन 15100 पर कॉल करें",
	"वकील से परामर्श लें",
}

// Actions returns a copy so callers cannot mutate the tables.
func Actions(docType domain.DocumentType) []string {
	if actions, ok := actionTable[docType]; ok {
		return slices.Clone(actions)
	}
	return slices.Clone(defaultActions)
}
