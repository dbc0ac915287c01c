// ABOUTME: Character detection: proper-noun frequency heuristic merged with LLM extraction
// ABOUTME: Banned-keyword filter and fuzzy dedup produce the final roster
package characters

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

const (
	// llmTextWindow is how much of the document the LLM stage sees.
	llmTextWindow = 4000
	// heuristicTop is the maximum number of heuristic candidates kept.
	heuristicTop = 15
	// heuristicMinCount is the minimum occurrences for a heuristic candidate.
	heuristicMinCount = 3
	// maxNameWords drops candidates that look like sentences.
	maxNameWords = 4
)

// bannedKeywords mark obviously non-person entities.
var bannedKeywords = []string{"travels", "kingdom", "city", "island", "country", "lord", "sir"}

// sentenceWords are capitalized words that usually start sentences rather
// than name people.
var sentenceWords = map[string]bool{
	"A": true, "An": true, "The": true, "And": true, "But": true, "Or": true,
	"He": true, "She": true, "It": true, "They": true, "We": true, "I": true,
	"You": true, "My": true, "His": true, "Her": true, "Their": true, "Our": true,
	"In": true, "On": true, "At": true, "As": true, "If": true, "So": true,
	"Then": true, "When": true, "While": true, "There": true, "This": true,
	"That": true, "These": true, "Those": true, "What": true, "Who": true,
	"Not": true, "No": true, "Yes": true, "By": true, "For": true, "To": true,
	"Of": true, "With": true, "From": true, "Now": true, "Here": true,
	"Chapter": true, "Part": true, "Book": true,
}

// NameExtractor is the LLM stage of detection.
type NameExtractor interface {
	ExtractCharacterNames(ctx context.Context, text string) ([]string, error)
}

// Detector finds the distinct fictional characters in a document.
type Detector struct {
	llm    NameExtractor
	logger *zap.Logger
}

// NewDetector creates a detector. llm may be nil, in which case only the
// heuristic stage runs.
func NewDetector(llm NameExtractor, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{llm: llm, logger: logger}
}

// Detect returns the ordered list of distinct character names. The LLM
// stage failing degrades to heuristic-only detection rather than failing
// the upload.
func (d *Detector) Detect(ctx context.Context, text string) ([]string, error) {
	heuristic := properNounCandidates(text)

	var llmNames []string
	if d.llm != nil {
		var err error
		llmNames, err = d.llm.ExtractCharacterNames(ctx, head(text, llmTextWindow))
		if err != nil {
			d.logger.Warn("LLM character extraction failed, using heuristic only", zap.Error(err))
			llmNames = nil
		}
	}

	// LLM names first: they are usually cleaner than raw frequency hits
	merged := append(llmNames, heuristic...)
	return filterNames(merged), nil
}

// properNounCandidates counts capitalized word runs (1-3 words) and keeps
// the most frequent recurring ones.
func properNounCandidates(text string) []string {
	counts := make(map[string]int)

	words := strings.Fields(text)
	for i := 0; i < len(words); i++ {
		first := cleanWord(words[i])
		if !isCapitalized(first) || sentenceWords[first] {
			continue
		}
		run := []string{first}
		for j := i + 1; j < len(words) && len(run) < 3; j++ {
			next := cleanWord(words[j])
			if !isCapitalized(next) || sentenceWords[next] {
				break
			}
			run = append(run, next)
		}
		counts[strings.Join(run, " ")]++
		i += len(run) - 1
	}

	type candidate struct {
		name  string
		count int
	}
	var candidates []candidate
	for name, count := range counts {
		if count > heuristicMinCount {
			candidates = append(candidates, candidate{name, count})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > heuristicTop {
		candidates = candidates[:heuristicTop]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}

// filterNames drops non-person entities and fuzzy duplicates, preserving
// first-seen order.
func filterNames(names []string) []string {
	var filtered []string
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if containsBanned(name) {
			continue
		}
		if len(strings.Fields(name)) > maxNameWords {
			continue
		}
		if isDuplicate(name, filtered) {
			continue
		}
		filtered = append(filtered, name)
	}
	return filtered
}

func containsBanned(name string) bool {
	lower := strings.ToLower(name)
	for _, bad := range bannedKeywords {
		if strings.Contains(lower, bad) {
			return true
		}
	}
	return false
}

// isDuplicate treats names as the same character when they match
// case-insensitively, one contains the other, or they are within a small
// edit distance.
func isDuplicate(name string, kept []string) bool {
	lower := strings.ToLower(name)
	for _, existing := range kept {
		el := strings.ToLower(existing)
		if lower == el {
			return true
		}
		if strings.Contains(el, lower) || strings.Contains(lower, el) {
			return true
		}
		if len(lower) > 3 && levenshtein(lower, el) <= 1 {
			return true
		}
	}
	return false
}

func cleanWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func isCapitalized(w string) bool {
	if w == "" {
		return false
	}
	runes := []rune(w)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func head(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
