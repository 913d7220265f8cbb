package simplify

import (
	"fmt"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/textutil"
)

// promptTextLimit bounds how much extracted text goes into the prompt.
const promptTextLimit = 3000

func buildPrompt(text string, docType domain.DocumentType) string {
	return fmt.Sprintf(`You are a legal assistant helping rural Indian users understand legal documents.

Task: Simplify the following legal document text into very simple Hindi that a village person can understand.

Document Type: %s

Original Text:
%s

Instructions:
1. Explain what this document is about in 2-3 simple lines
2. List what the person needs to do (if anything)
3. Mention any important deadlines
4. Use simple Hindi words, avoid English legal terms
5. Be direct and clear
6. If there are any warnings or urgent matters, highlight them

Format your response as:
📋 इस दस्तावेज़ का मतलब:
[explanation]

✅ आपको क्या करना है:
[actions if any]

⚠️ ध्यान दें:
[important warnings]
`, docType, textutil.TruncateRunes(text, promptTextLimit))
}
