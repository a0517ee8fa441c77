package analysis

// Texts holds the static human-readable strings for paths that never
// reach a generative model (no-URL branch, mock and local classifiers).
// JSON keys stay English; these values follow the user's language.
type Texts struct {
	NoLinkReason  string
	NoLinkSummary string
	NoLinkSteps   [2]string

	MockReasons [2]string
	MockSummary string
	MockSteps   [2]string

	ScoreReason  string // fmt verb for the 0-100 risk score
	SignalReason string // fmt verb for the fired-signal count

	SafeSummary       string
	SuspiciousSummary string
	MaliciousSummary  string
	LocalSteps        [2]string

	ExtraLinksNote string
}

var textsEnglish = Texts{
	NoLinkReason:  "No link was found in the message",
	NoLinkSummary: "There is no link here to check, so there is nothing dangerous to click.",
	NoLinkSteps: [2]string{
		"If someone promised you a link, ask them to resend it",
		"Never click links you were not expecting",
	},
	MockReasons: [2]string{
		"Demo mode: no external classifier is configured",
		"The link was not checked against a real model",
	},
	MockSummary: "This is a demo answer. Treat the link carefully until a real check runs.",
	MockSteps: [2]string{
		"Do not enter personal details on the site",
		"Ask a trusted adult before opening the link",
	},
	ScoreReason:       "Risk model score: %d/100",
	SignalReason:      "%d warning signs detected in the link itself",
	SafeSummary:       "The link looks safe, but stay alert for anything unusual.",
	SuspiciousSummary: "The link shows warning signs. Better not to open it.",
	MaliciousSummary:  "The link looks dangerous. Do not open it.",
	LocalSteps: [2]string{
		"Do not enter passwords or personal details through this link",
		"Verify the sender through another channel before clicking",
	},
	ExtraLinksNote: "Only the first link in the message was analyzed",
}

var textsHebrew = Texts{
	NoLinkReason:  "לא נמצא קישור בהודעה",
	NoLinkSummary: "אין כאן קישור לבדוק, אז אין על מה ללחוץ ואין סכנה.",
	NoLinkSteps: [2]string{
		"אם מישהו הבטיח לשלוח קישור, בקשי שישלח שוב",
		"לעולם אל תלחצי על קישורים שלא ציפית לקבל",
	},
	MockReasons: [2]string{
		"מצב דמו: לא מוגדר מסווג חיצוני",
		"הקישור לא נבדק מול מודל אמיתי",
	},
	MockSummary: "זו תשובת דמו. התייחסי לקישור בזהירות עד שתרוץ בדיקה אמיתית.",
	MockSteps: [2]string{
		"אל תזיני פרטים אישיים באתר",
		"התייעצי עם מבוגר לפני פתיחת הקישור",
	},
	ScoreReason:       "ציון מודל הסיכון: %d/100",
	SignalReason:      "זוהו %d סימני אזהרה בקישור עצמו",
	SafeSummary:       "הקישור נראה בטוח, אבל כדאי להישאר ערניים.",
	SuspiciousSummary: "הקישור מציג סימני אזהרה. עדיף לא לפתוח אותו.",
	MaliciousSummary:  "הקישור נראה מסוכן. אל תפתחי אותו.",
	LocalSteps: [2]string{
		"אל תזיני סיסמאות או פרטים אישיים דרך הקישור הזה",
		"ודאי את זהות השולח בדרך אחרת לפני לחיצה",
	},
	ExtraLinksNote: "נותח רק הקישור הראשון בהודעה",
}

// TextsFor returns the static strings for the given language.
func TextsFor(lang Lang) Texts {
	if lang == LangHebrew {
		return textsHebrew
	}
	return textsEnglish
}
