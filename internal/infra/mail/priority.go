package mail

import (
	"regexp"
	"strings"
	"time"
)

// Priority tiers used across notification and confirmation templates. The
// response target shown to the submitter and to the owner is derived from the
// same computation so the two emails can never disagree.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityStandard = "standard"
)

// Outlet display tiers for media inquiries.
const (
	OutletTier1        = "tier 1"
	OutletTierIndustry = "industry"
	OutletTierStandard = "standard"
)

var tier1Outlets = []string{
	"forbes", "bloomberg", "wall street journal", "wsj", "new york times",
	"nyt", "financial times", "cnbc", "reuters", "the economist",
}

var industryOutlets = []string{
	"techcrunch", "wired", "fast company", "harvard business review", "hbr",
	"business insider", "inc.", "entrepreneur", "venturebeat", "the verge",
}

var budgetRe = regexp.MustCompile(`(\d+)\s*[kK]`)

// budgetFloorK extracts the lower bound of a budget range in thousands:
// "$500k+" -> 500, "$100k-$250k" -> 100, "$50k" -> 50. Unparseable input
// yields 0 and falls into the lowest tier.
func budgetFloorK(budget string) int {
	m := budgetRe.FindStringSubmatch(budget)
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	return n
}

func immediateTimeline(timeline string) bool {
	t := strings.ToLower(timeline)
	return strings.Contains(t, "immediate") || strings.Contains(t, "asap") || strings.Contains(t, "urgent")
}

// ConsultingPriority crosses budget and timeline: top budget plus an
// immediate start is critical, either alone is high, a mid six-figure budget
// is medium, everything else standard.
func ConsultingPriority(budgetRange, timeline string) string {
	topBudget := budgetFloorK(budgetRange) >= 500
	immediate := immediateTimeline(timeline)

	switch {
	case topBudget && immediate:
		return PriorityCritical
	case topBudget || immediate:
		return PriorityHigh
	case budgetFloorK(budgetRange) >= 100:
		return PriorityMedium
	default:
		return PriorityStandard
	}
}

// SpeakingPriority buckets on the event budget alone.
func SpeakingPriority(budget string) string {
	switch floor := budgetFloorK(budget); {
	case floor >= 50:
		return PriorityHigh
	case floor >= 25:
		return PriorityMedium
	default:
		return PriorityStandard
	}
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MediaUrgent reports whether a media deadline falls within 24 hours of now.
// A deadline that cannot be parsed is treated as not urgent.
func MediaUrgent(deadline string, now time.Time) bool {
	t, ok := parseDeadline(deadline)
	if !ok {
		return false
	}
	return t.Sub(now) <= 24*time.Hour
}

// OutletTierFor matches the outlet name case-insensitively against the fixed
// tier lists, falling back to standard.
func OutletTierFor(outlet string) string {
	o := strings.ToLower(strings.TrimSpace(outlet))
	for _, name := range tier1Outlets {
		if strings.Contains(o, name) {
			return OutletTier1
		}
	}
	for _, name := range industryOutlets {
		if strings.Contains(o, name) {
			return OutletTierIndustry
		}
	}
	return OutletTierStandard
}

func MediaResponseTarget(urgent bool) string {
	if urgent {
		return "within 2 hours"
	}
	return "within 4 hours"
}

func ConsultingResponseTarget(priority string) string {
	switch priority {
	case PriorityCritical:
		return "within 4 hours"
	case PriorityHigh:
		return "within 8 hours"
	case PriorityMedium:
		return "within 24 hours"
	default:
		return "within 2 business days"
	}
}

func SpeakingResponseTarget(priority string) string {
	switch priority {
	case PriorityHigh:
		return "within 8 hours"
	case PriorityMedium:
		return "within 24 hours"
	default:
		return "within 2 business days"
	}
}

// GeneralResponseTarget is the flat target for general inquiries.
func GeneralResponseTarget() string {
	return "within 24 hours"
}
