package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/talentscout/core"
)

// maxHeaderTokens bounds how many whitespace-separated tokens a line may have
// to still count as a section header. Real headers are short; longer lines
// mentioning e.g. "projects" are body text.
const maxHeaderTokens = 6

// sectionPattern pairs a section name with its header matcher. Patterns are
// evaluated in this fixed priority order per line; the first pattern that
// matches claims the line.
type sectionPattern struct {
	name    core.SectionName
	pattern *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{core.SectionSkills, regexp.MustCompile(`(?i)(technical\s+skills|skills|technologies|competencies|tech\s+stack)`)},
	{core.SectionExperience, regexp.MustCompile(`(?i)(work\s+experience|professional\s+experience|employment|history|work\s+history)`)},
	{core.SectionEducation, regexp.MustCompile(`(?i)(education|qualifications|academic|certifications)`)},
	{core.SectionProjects, regexp.MustCompile(`(?i)(projects|personal\s+projects)`)},
}

// sectionStart records where a detected section header sits in the line list.
type sectionStart struct {
	name core.SectionName
	line int
}

// ChunkSections splits raw document text into labeled sections using heading
// heuristics.
//
// A line is a candidate header when, after trimming, it has fewer than
// maxHeaderTokens whitespace-separated tokens and matches one of the section
// patterns. Only the first line matching each section name is recorded, so a
// recurring word like "Projects" in body text cannot reset an established
// boundary. Each section's content runs from the line after its header up to
// the next recorded header (the header line itself is consumed); an empty
// interval yields an empty string entry, not an absent one.
//
// If no headers are detected at all, the entire text is assigned to the
// experience section so ungrouped documents stay retrievable.
func ChunkSections(text string) map[core.SectionName]string {
	lines := strings.Split(text, "\n")

	seen := make(map[core.SectionName]int)
	var starts []sectionStart

	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if len(strings.Fields(clean)) >= maxHeaderTokens {
			continue
		}
		for _, sp := range sectionPatterns {
			if !sp.pattern.MatchString(clean) {
				continue
			}
			if _, ok := seen[sp.name]; !ok {
				seen[sp.name] = i
				starts = append(starts, sectionStart{name: sp.name, line: i})
			}
			// First matching pattern claims the line.
			break
		}
	}

	if len(starts) == 0 {
		return map[core.SectionName]string{core.SectionExperience: text}
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].line < starts[j].line })

	sections := make(map[core.SectionName]string, len(starts))
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1].line
		}
		content := strings.Join(lines[start.line+1:end], "\n")
		sections[start.name] = strings.TrimSpace(content)
	}

	return sections
}
