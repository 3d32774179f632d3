// Package signals provides analyzers that turn candidate utterances
// into the structured signals the interview engine consumes.
package signals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/caseflow/internal/engine"
)

// Heuristic is a deterministic, lexical analyzer. It trades recall for
// predictability: every rule is a fixed pattern, no model calls, no
// state. It serves both as the offline default and as the fallback when
// the LLM-backed analyzer is unavailable.
type Heuristic struct{}

// NewHeuristic returns the lexical analyzer.
func NewHeuristic() *Heuristic { return &Heuristic{} }

var (
	pausePatterns = []string{
		"let me think", "give me a moment", "give me a second",
		"give me a minute", "need a moment", "need a minute",
		"moment to think", "let me gather my thoughts", "thinking out loud",
		"can i have a second", "can i take a moment",
	}
	skipPatterns = []string{
		"let's skip", "lets skip", "can we skip", "skip this",
		"skip ahead", "move on to the next", "can we move on",
		"let's move on", "lets move on", "i'd rather move on",
	}
	offTopicPatterns = []string{
		"are you a robot", "are you an ai", "are you human",
		"chatgpt", "what model are you", "what's the weather",
		"how's your day", "hows your day", "tell me about yourself",
		"what do you do for fun",
	}
	choiceMarkers = []string{
		"i would choose", "i'd choose", "i would pick", "i'd pick",
		"i would prioritize", "i'd prioritize", "i would go with",
		"i'd go with", "i would focus on", "i'd focus on",
		"my recommendation is", "i recommend", "my pick is",
		"let's focus on", "lets focus on", "my choice is",
	}
	reasonMarkers = []string{
		"because", "since ", "due to", "the reason", "given that",
		"which means", "so that", "as it has", "as it is", "as they are",
	}

	numberWords = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}

	countNouns = `segments?|groups?|buckets?|branches|drivers?|` +
		`pain points?|problems?|solutions?|ideas?|options?|` +
		`metrics?|reasons?|areas?|goals?`

	claimedCountRe = regexp.MustCompile(
		`\b(one|two|three|four|five|six|seven|eight|nine|ten|\d+)\s+(?:main\s+|key\s+|distinct\s+|different\s+)?(` + countNouns + `)\b`)

	enumMarkerRe = regexp.MustCompile(
		`(?:^|[.;:])\s*(?:first|second|third|fourth|fifth|1\)|2\)|3\)|4\)|5\)|1\.|2\.|3\.|4\.|5\.)[,:]?\s+`)

	ordinalReasonRe = regexp.MustCompile(
		`\b(?:first(?:ly)?|second(?:ly)?|third(?:ly)?|finally|also|and second)\b[,:]?`)

	vowelRe = regexp.MustCompile(`[aeiouyAEIOUY]`)
)

// Analyze reads one utterance. It never fails; anything it cannot
// classify comes back as a zero signal.
func (h *Heuristic) Analyze(utterance string, phase engine.PhaseSpec) engine.Signals {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	var sig engine.Signals

	if isGarbled(utterance) {
		sig.Unintelligible = true
		return sig
	}

	sig.PauseRequested = containsAny(lower, pausePatterns)
	sig.SkipRequested = containsAny(lower, skipPatterns)
	sig.OffTopic = containsAny(lower, offTopicPatterns)
	sig.ClaimedCount = claimedCount(lower)

	if marker, rest := findChoice(lower); marker {
		sig.StatesChoice = true
		sig.Choice = rest
	}
	sig.ReasonCount = reasonCount(lower)

	if kind := phase.Exit.EntityKind; kind != "" {
		sig.Entities = extractEntities(lower, kind)
	}
	return sig
}

// isGarbled flags utterances that read as transcription failures:
// empty, symbol noise, or runs of vowelless non-words.
func isGarbled(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return true
	}
	letters := 0
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			letters++
		}
	}
	if float64(letters)/float64(len(trimmed)) < 0.5 {
		return true
	}

	words := strings.Fields(trimmed)
	vowelless := 0
	for _, w := range words {
		if len(w) >= 3 && !vowelRe.MatchString(w) {
			vowelless++
		}
	}
	return len(words) > 0 && vowelless*2 > len(words)
}

func containsAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// claimedCount recovers self-reported enumeration sizes such as
// "I see three segments". Returns 0 when no count is claimed.
func claimedCount(lower string) int {
	m := claimedCountRe.FindStringSubmatch(lower)
	if m == nil {
		return 0
	}
	if n, ok := numberWords[m[1]]; ok {
		return n
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// findChoice locates a commitment marker and returns the clause that
// follows it, trimmed to the first sentence boundary.
func findChoice(lower string) (bool, string) {
	for _, marker := range choiceMarkers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		rest := lower[idx+len(marker):]
		if cut := strings.IndexAny(rest, ".;,"); cut >= 0 {
			rest = rest[:cut]
		}
		rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), "the "))
		words := strings.Fields(rest)
		if len(words) > 6 {
			words = words[:6]
		}
		return true, strings.Join(words, " ")
	}
	return false, ""
}

// reasonCount approximates how many distinct justifications the
// utterance carries, from causal connectives and ordinal enumeration.
func reasonCount(lower string) int {
	count := 0
	for _, marker := range reasonMarkers {
		count += strings.Count(lower, marker)
	}
	ordinals := len(ordinalReasonRe.FindAllString(lower, -1))
	if ordinals > count {
		count = ordinals
	}
	return count
}

// extractEntities pulls enumerated items out of list-shaped utterances.
// A list is introduced by a colon, by ordinal markers, or by a claimed
// count; items are split on commas and "and".
func extractEntities(lower string, kind engine.EntityKind) []engine.Entity {
	body := lower
	if idx := strings.Index(lower, ":"); idx >= 0 {
		body = lower[idx+1:]
	} else if loc := claimedCountRe.FindStringIndex(lower); loc != nil {
		body = lower[loc[1]:]
	} else if !enumMarkerRe.MatchString(lower) && !strings.Contains(lower, ",") {
		return nil
	}

	body = enumMarkerRe.ReplaceAllString(body, "|")
	body = strings.ReplaceAll(body, ", and ", "|")
	body = strings.ReplaceAll(body, " and ", "|")
	body = strings.ReplaceAll(body, ",", "|")

	var out []engine.Entity
	for _, part := range strings.Split(body, "|") {
		name := cleanItem(part)
		if name == "" {
			continue
		}
		out = append(out, engine.Entity{Kind: kind, Name: name})
	}
	return out
}

// cleanItem trims an enumerated fragment down to a plausible item name.
// Fragments that are too long to be a list item are discarded.
func cleanItem(part string) string {
	part = strings.Trim(strings.TrimSpace(part), ".;:!?")
	for _, prefix := range []string{"the ", "there's ", "there are ", "we have ", "maybe "} {
		part = strings.TrimPrefix(part, prefix)
	}
	words := strings.Fields(part)
	if len(words) == 0 || len(words) > 5 {
		return ""
	}
	if len(words) == 1 && fillerWords[words[0]] {
		return ""
	}
	return strings.Join(words, " ")
}

var fillerWords = map[string]bool{
	"here": true, "there": true, "it": true, "that": true,
	"this": true, "them": true, "so": true, "well": true,
	"too": true, "then": true,
}
