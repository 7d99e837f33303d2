package processing

import (
	"regexp"
	"strings"
	"unicode"
)

// Quality flags assigned to comment text.
const (
	FlagEmpty      = "empty"
	FlagEmojiOnly  = "emoji_only"
	FlagSpam       = "spam"
	FlagLowQuality = "low_quality"
	FlagNarrative  = "narrative"
)

const (
	lowQualityMaxWords = 2
	narrativeMinWords  = 15
)

// nonWordPattern strips punctuation and symbols, keeping letters, digits,
// underscores and whitespace across the full Unicode range.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// DefaultSpamPatterns are short-form spam idioms from the pt-BR comment
// community the collector targets ("fixed it", "first", "second",
// "arrived early"). The list is a policy table, not a contract; callers
// may supply their own patterns.
var DefaultSpamPatterns = CompileSpamPatterns([]string{
	`(?i)\bme\s+fix[ao]\b`,
	`(?i)\bprimeiro\b`,
	`(?i)\bsegundo\b`,
	`(?i)\bcedoo+\b`,
	`(?i)\bchegamos cedo\b`,
})

// CompileSpamPatterns compiles a pattern list, skipping entries that fail
// to compile. An operator typo in an override list costs one pattern, not
// the whole run.
func CompileSpamPatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// FlagComment classifies comment text with the default spam patterns.
func FlagComment(text string) []string {
	return FlagCommentWith(text, DefaultSpamPatterns)
}

// FlagCommentWith assigns zero or more quality flags to comment text.
// The steps are ordered and short-circuit: a match at any step except the
// final narrative check ends classification.
func FlagCommentWith(text string, spamPatterns []*regexp.Regexp) []string {
	if strings.TrimSpace(text) == "" {
		return []string{FlagEmpty}
	}

	clean := strings.TrimSpace(nonWordPattern.ReplaceAllString(text, ""))
	if clean == "" {
		// Visible characters but no word characters: pure emoji/symbols.
		return []string{FlagEmojiOnly}
	}

	words := strings.Fields(clean)

	if len(words) == 1 && allDigits(words[0]) {
		return []string{FlagSpam}
	}

	for _, re := range spamPatterns {
		if re.MatchString(text) {
			return []string{FlagSpam}
		}
	}

	if len(words) <= lowQualityMaxWords {
		return []string{FlagLowQuality}
	}

	if len(words) >= narrativeMinWords {
		return []string{FlagNarrative}
	}

	return []string{}
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
