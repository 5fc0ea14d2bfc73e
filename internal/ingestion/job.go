package ingestion

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/smart-match/internal/matching"
	"github.com/jonathan/smart-match/internal/types"
)

// Section headings that mark the start of bonus qualifications. Skills seen
// after one of these are classified as preferred rather than required.
var preferredHeadings = []string{
	"nice to have",
	"nice-to-have",
	"preferred qualifications",
	"preferred skills",
	"bonus points",
}

var (
	salaryRangePattern   = regexp.MustCompile(`\$\s?(\d[\d,]*)(?:k)?\s*(?:-|–|to)\s*\$?\s?(\d[\d,]*)(?:k)?`)
	minExperiencePattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)
)

// ParseJobHTML extracts a job record from a static HTML job posting. Skills
// are recognized by scanning the posting text against the matching engine's
// synonym vocabulary, so only skills the engine can score are picked up.
func ParseJobHTML(id, html string) (*types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove common unwanted elements (nav, footer, scripts, ads, etc.)
	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner").Remove()

	job := &types.Job{ID: id}
	job.Title = extractTitle(doc)
	job.Location = extractLocation(doc)

	text := cleanWhitespace(doc.Find("body").Text())
	lowerText := strings.ToLower(text)

	job.IsRemote = strings.Contains(strings.ToLower(job.Title), "remote") ||
		strings.Contains(lowerText, "fully remote") ||
		strings.Contains(lowerText, "remote-first") ||
		strings.Contains(lowerText, "100% remote")

	requiredText, preferredText := splitPreferredSection(lowerText)
	job.RequiredSkills = scanSkills(requiredText)
	job.PreferredSkills = scanSkills(preferredText)

	if minYears, ok := extractMinExperience(lowerText); ok {
		job.MinExperience = minYears
	}
	if rangeMin, rangeMax, ok := extractSalaryRange(lowerText); ok {
		job.SalaryRangeMin = &rangeMin
		job.SalaryRangeMax = &rangeMax
	}

	return job, nil
}

// extractTitle prefers og:title, then the first h1, then the document title.
func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractLocation(doc *goquery.Document) string {
	selectors := []string{
		`[itemprop="jobLocation"]`,
		".job-location",
		".location",
		"#location",
	}
	for _, selector := range selectors {
		if loc := strings.TrimSpace(doc.Find(selector).First().Text()); loc != "" {
			return loc
		}
	}
	return ""
}

// splitPreferredSection splits posting text at the first bonus-qualification
// heading. Everything before it counts as required context.
func splitPreferredSection(lowerText string) (string, string) {
	splitAt := -1
	for _, heading := range preferredHeadings {
		if idx := strings.Index(lowerText, heading); idx >= 0 && (splitAt == -1 || idx < splitAt) {
			splitAt = idx
		}
	}
	if splitAt == -1 {
		return lowerText, ""
	}
	return lowerText[:splitAt], lowerText[splitAt:]
}

// scanSkills finds known skill vocabulary in text, returning canonical names
// sorted for deterministic output.
func scanSkills(lowerText string) []string {
	if lowerText == "" {
		return nil
	}

	found := make(map[string]bool)
	for _, surface := range matching.KnownSkills() {
		pattern := regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(surface) + `($|[^a-z0-9+])`)
		if pattern.MatchString(lowerText) {
			found[matching.NormalizeSkill(surface)] = true
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	if len(skills) == 0 {
		return nil
	}
	return skills
}

func extractMinExperience(lowerText string) (float64, bool) {
	match := minExperiencePattern.FindStringSubmatch(lowerText)
	if match == nil {
		return 0, false
	}
	years, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return years, true
}

func extractSalaryRange(lowerText string) (float64, float64, bool) {
	match := salaryRangePattern.FindStringSubmatch(lowerText)
	if match == nil {
		return 0, 0, false
	}
	rangeMin, errMin := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	rangeMax, errMax := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", ""), 64)
	if errMin != nil || errMax != nil || rangeMax < rangeMin {
		return 0, 0, false
	}
	// Postings sometimes abbreviate thousands, e.g. "$120k - $160k".
	if rangeMax < 1000 {
		rangeMin *= 1000
		rangeMax *= 1000
	}
	return rangeMin, rangeMax, true
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
