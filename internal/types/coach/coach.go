package coach

type TipType string

const (
	Warning       TipType = "warning"
	Suggestion    TipType = "suggestion"
	Encouragement TipType = "encouragement"
)

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Tip is the AI coach's advice for the signed-in user.
type Tip struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	Type      TipType  `json:"type"`
	Priority  Priority `json:"priority"`
	CreatedAt string   `json:"createdAt"`
}

// Style is the set of CSS classes a tip card is drawn with.
type Style struct {
	Icon   string `json:"icon"`
	Bg     string `json:"bg"`
	Text   string `json:"text"`
	Border string `json:"border"`
}

func (t TipType) Style() Style {
	switch t {
	case Warning:
		return Style{Icon: "alert-triangle", Bg: "bg-destructive/10", Text: "text-destructive", Border: "border-destructive/20"}
	case Suggestion:
		return Style{Icon: "lightbulb", Bg: "bg-primary/10", Text: "text-primary", Border: "border-primary/20"}
	case Encouragement:
		return Style{Icon: "heart", Bg: "bg-green-100", Text: "text-green-700", Border: "border-green-200"}
	default:
		return Style{Icon: "brain", Bg: "bg-muted", Text: "text-muted-foreground", Border: "border-border"}
	}
}

func (p Priority) Label() string {
	switch p {
	case High:
		return "중요"
	case Medium:
		return "보통"
	case Low:
		return "참고"
	default:
		return ""
	}
}
