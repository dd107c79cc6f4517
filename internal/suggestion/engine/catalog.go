package engine

import "regexp"

// TimingKind selects how a template's scheduled time is derived.
type TimingKind int

const (
	// TimingDistributed spreads the task across the preparation window
	// in proportion to the template's own weight.
	TimingDistributed TimingKind = iota
	// TimingFixedBefore schedules a fixed number of days before the event starts.
	TimingFixedBefore
	// TimingFixedAfter schedules a fixed number of days after the event ends.
	TimingFixedAfter
)

// Timing is a template's scheduling policy. Exactly one kind applies;
// Days is meaningful only for the fixed kinds.
type Timing struct {
	Kind TimingKind
	Days int
}

// Distributed returns a timing spread across the preparation window.
func Distributed() Timing { return Timing{Kind: TimingDistributed} }

// FixedBefore returns a timing at a fixed offset before the event start.
func FixedBefore(days int) Timing { return Timing{Kind: TimingFixedBefore, Days: days} }

// FixedAfter returns a timing at a fixed offset after the event end.
func FixedAfter(days int) Timing { return Timing{Kind: TimingFixedAfter, Days: days} }

// TaskTemplate is a parametrized task description with timing and weight.
type TaskTemplate struct {
	// Text contains the {event_title} placeholder.
	Text   string
	Timing Timing
	// ComplexityMultiplier is the template's relative weight, typically 0.2-1.2.
	ComplexityMultiplier float64
}

// ComplexityKeywords groups a category's complexity signals by tier.
type ComplexityKeywords struct {
	High   []string
	Medium []string
	Low    []string
}

// Category is one event archetype with its detection rules and templates.
type Category struct {
	Name string
	// Patterns are checked in order; later patterns are assumed more
	// specific and score higher.
	Patterns []*regexp.Regexp
	// TitleKeywords score a flat bonus when found in the title alone.
	TitleKeywords []string
	Complexity    ComplexityKeywords
	BasePrepDays  int
	Templates     []TaskTemplate
}

const (
	// FallbackCategory is reported when no category scores high enough.
	FallbackCategory = "general"

	// DefaultCategory resolves template lookups for categories without
	// a template set of their own (including the fallback).
	DefaultCategory = "appointment"

	titlePlaceholder = "{event_title}"
)

// Catalog is the static, read-only category table. The slice order is the
// deterministic tie-break order for classification; it never changes at runtime.
type Catalog struct {
	categories []Category
	byName     map[string]*Category
}

// NewCatalog builds the default catalog. Construct once at startup.
func NewCatalog() *Catalog {
	cats := defaultCategories()
	byName := make(map[string]*Category, len(cats))
	for i := range cats {
		byName[cats[i].Name] = &cats[i]
	}
	return &Catalog{categories: cats, byName: byName}
}

// Categories returns the categories in tie-break order.
func (c *Catalog) Categories() []Category { return c.categories }

// Lookup resolves a category by name.
func (c *Catalog) Lookup(name string) (*Category, bool) {
	cat, ok := c.byName[name]
	return cat, ok
}

func defaultCategories() []Category {
	return []Category{
		{
			Name: "meeting",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(meeting|conference|call|discussion|sync|standup|review|presentation)\b`),
				regexp.MustCompile(`\b(client|team|board|staff|committee)\b.*\b(meeting|call)\b`),
				regexp.MustCompile(`\b(zoom|teams|skype|webex)\b.*\b(call|meeting)\b`),
			},
			TitleKeywords: []string{"meeting", "conference", "call", "discussion"},
			Complexity: ComplexityKeywords{
				High:   []string{"board", "client", "presentation", "conference", "annual"},
				Medium: []string{"team", "review", "planning", "quarterly"},
				Low:    []string{"standup", "sync", "quick", "brief", "check-in"},
			},
			BasePrepDays: 2,
			Templates: []TaskTemplate{
				{Text: "Review agenda and prepare talking points for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.0},
				{Text: "Gather relevant documents and materials for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.8},
				{Text: "Test technology setup for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.3},
				{Text: "Send reminder and confirmation for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.2},
				{Text: "Follow up with action items from {event_title}", Timing: FixedAfter(1), ComplexityMultiplier: 0.5},
			},
		},
		{
			Name: "exam_study",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(exam|test|quiz|assessment|evaluation|midterm|final)\b`),
				regexp.MustCompile(`\b(study|preparation|review)\b.*\b(exam|test)\b`),
				regexp.MustCompile(`\b(examination|assessment)\b`),
				regexp.MustCompile(`\bmid\s*(semester|term)\s*(exam|test|assessment)\b`),
				regexp.MustCompile(`\b(semester|term)\s*(exam|test|assessment)\b`),
			},
			TitleKeywords: []string{"exam", "test", "quiz", "midterm", "final", "assessment"},
			Complexity: ComplexityKeywords{
				High:   []string{"final", "comprehensive", "board", "certification", "licensing"},
				Medium: []string{"midterm", "unit", "module", "chapter"},
				Low:    []string{"quiz", "pop", "quick", "review"},
			},
			BasePrepDays: 7,
			Templates: []TaskTemplate{
				{Text: "Create study schedule for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.0},
				{Text: "Review course materials and notes for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.2},
				{Text: "Practice problems and past papers for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.0},
				{Text: "Create summary notes and flashcards for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.8},
				{Text: "Final review session for {event_title}", Timing: FixedBefore(1), ComplexityMultiplier: 0.6},
				{Text: "Gather exam materials and check requirements for {event_title}", Timing: FixedBefore(1), ComplexityMultiplier: 0.3},
			},
		},
		{
			Name: "travel",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(trip|travel|flight|journey|vacation|holiday|tour)\b`),
				regexp.MustCompile(`\b(business|work)\s+(trip|travel)\b`),
				regexp.MustCompile(`\b(conference|seminar)\b.*\b(travel|trip)\b`),
			},
			TitleKeywords: []string{"trip", "travel", "flight", "vacation"},
			Complexity: ComplexityKeywords{
				High:   []string{"international", "business", "conference", "extended", "family"},
				Medium: []string{"domestic", "weekend", "short", "personal"},
				Low:    []string{"day", "local", "nearby"},
			},
			BasePrepDays: 5,
			Templates: []TaskTemplate{
				{Text: "Research and book transportation for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.0},
				{Text: "Arrange accommodation for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.9},
				{Text: "Create packing checklist for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.6},
				{Text: "Check weather and prepare appropriate clothing for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.4},
				{Text: "Arrange transportation to airport/station for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.5},
				{Text: "Check travel documents and requirements for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.7},
				{Text: "Pack essentials and final preparations for {event_title}", Timing: FixedBefore(1), ComplexityMultiplier: 0.3},
			},
		},
		{
			Name: "project",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(project|deadline|launch|release|deployment|milestone)\b`),
				regexp.MustCompile(`\b(deliverable|submission|presentation)\b.*\b(due|deadline)\b`),
				regexp.MustCompile(`\b(sprint|iteration)\b.*\b(review|demo)\b`),
			},
			TitleKeywords: []string{"project", "deadline", "launch", "release"},
			Complexity: ComplexityKeywords{
				High:   []string{"major", "critical", "launch", "release", "final"},
				Medium: []string{"milestone", "phase", "module", "component"},
				Low:    []string{"minor", "update", "patch", "quick"},
			},
			BasePrepDays: 10,
			Templates: []TaskTemplate{
				{Text: "Break down project scope and create timeline for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.0},
				{Text: "Assign resources and responsibilities for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.8},
				{Text: "Set up project tracking and communication channels for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.6},
				{Text: "Create quality assurance and testing plan for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.9},
				{Text: "Prepare documentation and user guides for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.7},
				{Text: "Final review and testing before {event_title}", Timing: FixedBefore(2), ComplexityMultiplier: 0.8},
				{Text: "Post-project review and documentation for {event_title}", Timing: FixedAfter(3), ComplexityMultiplier: 0.6},
			},
		},
		{
			Name: "presentation",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(presentation|pitch|demo|speech|talk|lecture)\b`),
				regexp.MustCompile(`\b(present|presenting)\b.*\b(to|at|for)\b`),
				regexp.MustCompile(`\b(keynote|workshop|seminar)\b`),
			},
			TitleKeywords: []string{"presentation", "pitch", "demo", "speech"},
			Complexity: ComplexityKeywords{
				High:   []string{"keynote", "conference", "board", "client", "public"},
				Medium: []string{"team", "departmental", "training", "workshop"},
				Low:    []string{"informal", "quick", "update", "brief"},
			},
			BasePrepDays: 5,
			Templates: []TaskTemplate{
				{Text: "Research audience and tailor content for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.0},
				{Text: "Create presentation outline and structure for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.9},
				{Text: "Develop slides and visual materials for {event_title}", Timing: Distributed(), ComplexityMultiplier: 1.1},
				{Text: "Practice presentation delivery for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.8},
				{Text: "Prepare for Q&A and potential questions for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.7},
				{Text: "Test technical setup and backup plans for {event_title}", Timing: FixedBefore(1), ComplexityMultiplier: 0.4},
				{Text: "Gather feedback and follow up after {event_title}", Timing: FixedAfter(1), ComplexityMultiplier: 0.3},
			},
		},
		{
			Name: "appointment",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(appointment|consultation|checkup|visit|interview)\b`),
				regexp.MustCompile(`\b(doctor|dentist|medical|health)\b.*\b(appointment|visit)\b`),
				regexp.MustCompile(`\b(job|employment)\b.*\b(interview|meeting)\b`),
			},
			TitleKeywords: []string{"appointment", "consultation", "checkup"},
			Complexity: ComplexityKeywords{
				High:   []string{"job", "medical", "specialist", "important", "final"},
				Medium: []string{"consultation", "interview", "checkup"},
				Low:    []string{"routine", "follow-up", "quick", "brief"},
			},
			BasePrepDays: 2,
			Templates: []TaskTemplate{
				{Text: "Confirm appointment details and location for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.3},
				{Text: "Prepare necessary documents and information for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.7},
				{Text: "Research and prepare questions for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.6},
				{Text: "Plan transportation and allow extra time for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.4},
				{Text: "Follow up on outcomes and next steps from {event_title}", Timing: FixedAfter(1), ComplexityMultiplier: 0.4},
			},
		},
		{
			Name: "social_event",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(party|celebration|birthday|anniversary|wedding|gathering)\b`),
				regexp.MustCompile(`\b(dinner|lunch|social|hangout|meetup)\b`),
				regexp.MustCompile(`\b(holiday|festival|cultural)\b.*\b(event|celebration)\b`),
			},
			TitleKeywords: []string{"party", "celebration", "birthday", "wedding"},
			Complexity: ComplexityKeywords{
				High:   []string{"wedding", "anniversary", "major", "formal", "hosted"},
				Medium: []string{"birthday", "celebration", "dinner", "gathering"},
				Low:    []string{"casual", "informal", "small", "simple"},
			},
			BasePrepDays: 3,
			Templates: []TaskTemplate{
				{Text: "Plan guest list and send invitations for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.8},
				{Text: "Arrange venue and necessary reservations for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.9},
				{Text: "Plan menu, catering, or restaurant for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.7},
				{Text: "Choose appropriate outfit or attire for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.3},
				{Text: "Prepare gifts, cards, or contributions for {event_title}", Timing: Distributed(), ComplexityMultiplier: 0.5},
				{Text: "Send thank you messages after {event_title}", Timing: FixedAfter(1), ComplexityMultiplier: 0.5},
			},
		},
	}
}
