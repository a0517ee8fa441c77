package analysis

// Schema constants. Every Report carries them so the client can
// distinguish scanner versions.
const (
	SchemaVersion = "1.0"
	ToolName      = "link_scanner"
)

// Verdict is the classifier's judgment of a URL.
type Verdict string

const (
	VerdictSafe       Verdict = "safe"
	VerdictSuspicious Verdict = "suspicious"
	VerdictMalicious  Verdict = "malicious"
	VerdictUnknown    Verdict = "unknown"
)

// Lang is the language of the human-readable values in a Report.
// JSON keys stay English regardless.
type Lang string

const (
	LangEnglish Lang = "en"
	LangHebrew  Lang = "he"
)

// Turn is one prior message of the conversation forwarded as
// classifier context.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Input size bounds. Enforced before anything leaves the process.
const (
	MaxMessageLen = 5000
	MaxURLLen     = 2048
	MaxTurns      = 10
	MaxTurnLen    = 2000
)

// Signals are the named boolean heuristics surfaced next to the verdict.
// All keys are always present in the JSON, even when false.
type Signals struct {
	VeryLongURL                 bool `json:"veryLongUrl"`
	ManySpecialChars            bool `json:"manySpecialChars"`
	IPAddressInDomain           bool `json:"ipAddressInDomain"`
	LooksLikeBrandImpersonation bool `json:"looksLikeBrandImpersonation"`
	SuspiciousTLD               bool `json:"suspiciousTld"`
	ShortenedURL                bool `json:"shortenedUrl"`
}

// Report is the fixed result schema. Every field is populated on every
// path, including the no-URL one; the client renders it without
// defensive checks of its own.
type Report struct {
	Version string `json:"version"`
	Tool    string `json:"tool"`
	Input   struct {
		URL *string `json:"url"`
	} `json:"input"`
	Result struct {
		Verdict    Verdict  `json:"verdict"`
		Confidence int      `json:"confidence"`
		RiskScore  int      `json:"riskScore"`
		Reasons    []string `json:"reasons"`
		Signals    Signals  `json:"detectedSignals"`
	} `json:"result"`
	Advice struct {
		Summary       string   `json:"summary"`
		TwoQuickSteps []string `json:"twoQuickSteps"`
	} `json:"advice"`
	Debug struct {
		Assumptions []string `json:"assumptions"`
		MissingInfo []string `json:"missingInfo"`
	} `json:"debug"`
}

// NewReport returns a Report with the constant header fields set and
// all slices non-nil.
func NewReport() *Report {
	r := &Report{Version: SchemaVersion, Tool: ToolName}
	r.Result.Verdict = VerdictUnknown
	r.Result.Reasons = []string{}
	r.Advice.TwoQuickSteps = []string{}
	r.Debug.Assumptions = []string{}
	r.Debug.MissingInfo = []string{}
	return r
}
