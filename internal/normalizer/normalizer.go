package normalizer

import (
	"regexp"
	"strings"
)

// hard ceiling on the text handed to the embedding model
const MaxChars = 7500

// per-section line caps for the first build pass
const (
	educationCap    = 3
	skillsCap       = 5
	experienceCap   = 8
	achievementsCap = 5
)

// tighter caps used when the first pass overflows MaxChars
const (
	tightEducationCap    = 2
	tightSkillsCap       = 3
	tightExperienceCap   = 5
	tightAchievementsCap = 3
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
)

type sectionCaps struct {
	education    int
	skills       int
	experience   int
	achievements int
}

// Normalizer reduces raw extracted document text to a bounded,
// information-dense representation before embedding. Lines matching
// section keywords are promoted over raw document order.
type Normalizer struct {
	vocab Vocabulary
}

func New(vocab Vocabulary) *Normalizer {
	return &Normalizer{vocab: vocab}
}

// builds the normalized representation of raw document text.
// empty input yields an empty string; callers must skip embedding in
// that case. When no line matches any section vocabulary the first
// MaxChars of the raw text are used instead.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	lines := splitLines(raw)

	contact := extractContact(raw)

	buckets := n.classify(lines)

	out := buildSections(contact, buckets, sectionCaps{
		education:    educationCap,
		skills:       skillsCap,
		experience:   experienceCap,
		achievements: achievementsCap,
	})

	if len(out) > MaxChars {
		out = buildSections(contact, buckets, sectionCaps{
			education:    tightEducationCap,
			skills:       tightSkillsCap,
			experience:   tightExperienceCap,
			achievements: tightAchievementsCap,
		})

		if len(out) > MaxChars {
			out = out[:MaxChars]
		}
	}

	// no keyword matched anywhere - fall back to the raw prefix
	if out == "" {
		if len(raw) > MaxChars {
			return raw[:MaxChars]
		}

		return raw
	}

	return out
}

type lineBuckets struct {
	education    []string
	skills       []string
	experience   []string
	achievements []string
}

// assigns each line to every bucket whose vocabulary it matches.
// duplication across buckets is intentional and not deduplicated.
func (n *Normalizer) classify(lines []string) lineBuckets {
	var b lineBuckets

	for _, line := range lines {
		lower := strings.ToLower(line)

		if matchesAny(lower, n.vocab.Education) {
			b.education = append(b.education, line)
		}

		if matchesAny(lower, n.vocab.Skills) {
			b.skills = append(b.skills, line)
		}

		if matchesAny(lower, n.vocab.Experience) {
			b.experience = append(b.experience, line)
		}

		if matchesAny(lower, n.vocab.Achievements) {
			b.achievements = append(b.achievements, line)
		}
	}

	return b
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}

func splitLines(raw string) []string {
	var lines []string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return lines
}

// pulls the first email and phone number out of the raw text
func extractContact(raw string) []string {
	var contact []string

	if email := emailRegex.FindString(raw); email != "" {
		contact = append(contact, "Email: "+email)
	}

	if phone := phoneRegex.FindString(raw); phone != "" {
		contact = append(contact, "Phone: "+phone)
	}

	return contact
}

func buildSections(contact []string, b lineBuckets, caps sectionCaps) string {
	var sb strings.Builder

	for _, line := range contact {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	writeSection(&sb, "EDUCATION", b.education, caps.education)
	writeSection(&sb, "SKILLS", b.skills, caps.skills)
	writeSection(&sb, "EXPERIENCE", b.experience, caps.experience)
	writeSection(&sb, "PROJECTS & ACHIEVEMENTS", b.achievements, caps.achievements)

	out := sb.String()

	// contact info alone is not a usable representation
	if len(b.education)+len(b.skills)+len(b.experience)+len(b.achievements) == 0 {
		return ""
	}

	return strings.TrimRight(out, "\n")
}

func writeSection(sb *strings.Builder, label string, lines []string, limit int) {
	if len(lines) == 0 {
		return
	}

	if len(lines) > limit {
		lines = lines[:limit]
	}

	sb.WriteString(label)
	sb.WriteString(":\n")

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
