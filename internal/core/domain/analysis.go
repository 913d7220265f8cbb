package domain

import "time"

type DocumentType string

const (
	TypeLegalNotice      DocumentType = "legal_notice"
	TypeFIR              DocumentType = "fir"
	TypeCourtOrder       DocumentType = "court_order"
	TypeLandRecord       DocumentType = "land_record"
	TypeGovernmentLetter DocumentType = "government_letter"
	TypeAgreement        DocumentType = "agreement"
	TypeResume           DocumentType = "resume"
	TypeGeneral          DocumentType = "general"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
)

type typeInfo struct {
	name    string
	urgency Urgency
}

var typeTable = map[DocumentType]typeInfo{
	TypeLegalNotice:      {"कानूनी नोटिस (Legal Notice)", UrgencyHigh},
	TypeFIR:              {"प्रथम सूचना रिपोर्ट (FIR)", UrgencyHigh},
	TypeCourtOrder:       {"न्यायालय आदेश (Court Order)", UrgencyHigh},
	TypeLandRecord:       {"भूमि दस्तावेज़ (Land Record)", UrgencyMedium},
	TypeGovernmentLetter: {"सरकारी पत्र (Government Letter)", UrgencyMedium},
	TypeAgreement:        {"समझौता पत्र (Agreement)", UrgencyMedium},
	TypeResume:           {"रिज़्यूमे/CV (Resume)", UrgencyLow},
}

// DisplayName returns the localized document type name shown to users.
func (t DocumentType) DisplayName() string {
	if info, ok := typeTable[t]; ok {
		return info.name
	}
	return "सामान्य दस्तावेज़"
}

func (t DocumentType) Urgency() Urgency {
	if info, ok := typeTable[t]; ok {
		return info.urgency
	}
	return UrgencyNormal
}

// RawUpload is the ephemeral per-request input. It is never persisted by the
// pipeline itself; the async path stores the bytes in object storage instead.
type RawUpload struct {
	Content  []byte
	Filename string
	MimeType string
}

// OcrOutcome is produced once per upload by the OCR gateway.
// Method identifies the provider that produced the text and is reported for
// observability only.
type OcrOutcome struct {
	Text   string
	Method string
}

type ClassificationResult struct {
	DocumentType DocumentType
	Score        int
}

// ExtractedEntities holds ordered, de-duplicated, length-capped match lists.
// Skills, Education and Experience are only populated when IsResume is set.
type ExtractedEntities struct {
	Names       []string
	Dates       []string
	Amounts     []string
	CaseNumbers []string
	Phones      []string
	Emails      []string
	Addresses   []string
	Skills      []string
	Education   []string
	Experience  []string
	IsResume    bool
}

func (e ExtractedEntities) Empty() bool {
	return len(e.Names) == 0 && len(e.Dates) == 0 && len(e.Amounts) == 0 &&
		len(e.CaseNumbers) == 0 && len(e.Phones) == 0 && len(e.Emails) == 0 &&
		len(e.Addresses) == 0 && len(e.Skills) == 0 && len(e.Education) == 0 &&
		len(e.Experience) == 0
}

type SimplificationSource string

const (
	SourceAI        SimplificationSource = "ai"
	SourceRuleBased SimplificationSource = "rule_based"
)

type SimplifiedExplanation struct {
	Text   string               `json:"text"`
	Source SimplificationSource `json:"source"`
}

type ImportantDate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// AnalysisResult is the aggregate returned to the caller. It is assembled once
// per request and never mutated afterwards.
type AnalysisResult struct {
	DocumentType         DocumentType         `json:"documentType"`
	DocumentTypeName     string               `json:"documentTypeName"`
	UrgencyLevel         Urgency              `json:"urgencyLevel"`
	ExtractedText        string               `json:"extractedText"`
	SimplifiedText       string               `json:"simplifiedText"`
	SimplificationSource SimplificationSource `json:"simplificationSource"`
	KeyPoints            []string             `json:"keyPoints"`
	ImportantDates       []ImportantDate      `json:"importantDates"`
	RecommendedActions   []string             `json:"recommendedActions"`
	OCRMethod            string               `json:"ocrMethod"`
	WordCount            int                  `json:"wordCount"`
	ProcessedAt          string               `json:"processedAt"`
}

type AnalysisStatus string

const (
	StatusUploaded   AnalysisStatus = "uploaded"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// AnalysisRecord is the persisted envelope for the asynchronous path.
type AnalysisRecord struct {
	ID          string          `json:"id"`
	Filename    string          `json:"filename"`
	MimeType    string          `json:"mime_type"`
	StoragePath string          `json:"storage_path"`
	Status      AnalysisStatus  `json:"status"`
	Error       string          `json:"error,omitempty"`
	Result      *AnalysisResult `json:"result,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
