package prompt

import "fmt"

const systemPrompt = `You are a digital safety assistant called PrivacyShield.

Your task is to analyze a URL provided by the user and determine whether it is
SAFE, SUSPICIOUS, MALICIOUS, or UNKNOWN, with a focus on phishing/scams/sextortion risks.

OUTPUT RULES (VERY IMPORTANT):
- You MUST return ONLY valid JSON.
- Do NOT include markdown.
- Do NOT include explanations outside JSON.
- Do NOT add extra fields.
- The JSON structure and keys must ALWAYS remain the same.
- If uncertain, use conservative values and explain in debug.

LANGUAGE RULE:
- Always keep the JSON keys and structure in English exactly as defined by the schema.
- However, all text VALUES inside the JSON (reasons, summary, twoQuickSteps) must be written in the user's language: %s.
`

const schemaPrompt = `Return ONLY a JSON object with EXACTLY this structure and keys:

{
  "version": "1.0",
  "tool": "link_scanner",
  "input": { "url": "" },
  "result": {
    "verdict": "safe|suspicious|malicious|unknown",
    "confidence": 0,
    "riskScore": 0,
    "reasons": [],
    "detectedSignals": {
      "veryLongUrl": false,
      "manySpecialChars": false,
      "ipAddressInDomain": false,
      "looksLikeBrandImpersonation": false,
      "suspiciousTld": false,
      "shortenedUrl": false
    }
  },
  "advice": {
    "summary": "",
    "twoQuickSteps": []
  },
  "debug": {
    "assumptions": [],
    "missingInfo": []
  }
}

Rules:
- Fill all fields.
- Use integers for confidence and riskScore (0-100).
- Keep twoQuickSteps to exactly 2 items.
- reasons should be short bullet-like strings (no long paragraphs).
`

// GetSystemPrompt returns the scanner persona with the language rule
// bound to the detected user language ("English"/"Hebrew").
func GetSystemPrompt(language string) string {
	return fmt.Sprintf(systemPrompt, language)
}

// GetSchemaPrompt returns the fixed output contract.
func GetSchemaPrompt() string {
	return schemaPrompt
}

// GetUserPrompt builds the final user turn carrying the URL.
func GetUserPrompt(url string) string {
	return fmt.Sprintf("Analyze this URL: %s", url)
}

// GetUserPromptWithPrior includes the local model's risk score as a
// prior signal for the hybrid variant. Score is on the 0-100 scale.
func GetUserPromptWithPrior(url string, priorScore int) string {
	return fmt.Sprintf("Analyze this URL: %s\nA local risk model already scored it %d/100. Treat that as a prior signal, not a final answer.", url, priorScore)
}

// GetRepairPrompt asks the model to coerce its previous malformed
// output into valid schema JSON. Used for the single repair pass.
func GetRepairPrompt(malformed string) string {
	return fmt.Sprintf("The following text was supposed to be valid JSON matching the schema above but is not. Fix it into valid JSON matching the schema. Return ONLY the JSON object.\n\n%s", malformed)
}
