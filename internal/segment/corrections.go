package segment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Rules maps wrong text to its correction. Keys are case-sensitive and unique;
// the whole set is persisted as a flat object in one application-global file.
type Rules map[string]string

var ErrDuplicateRule = errors.New("a correction rule for this text already exists")

// Add inserts a new rule. A rule whose wrong text already exists is rejected;
// editing an existing rule goes through Remove + Add.
func (r Rules) Add(wrong, correct string) error {
	wrong = strings.TrimSpace(wrong)
	correct = strings.TrimSpace(correct)
	if wrong == "" || correct == "" {
		return errors.New("both wrong and correct text are required")
	}
	if _, ok := r[wrong]; ok {
		return ErrDuplicateRule
	}
	r[wrong] = correct
	return nil
}

// Remove deletes the rule for the given wrong text. Returns false when no such
// rule exists.
func (r Rules) Remove(wrong string) bool {
	if _, ok := r[wrong]; !ok {
		return false
	}
	delete(r, wrong)
	return true
}

// LoadRules reads the rule file. A missing file is an empty rule set, not an
// error.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Rules{}, nil
		}
		return nil, fmt.Errorf("read corrections file: %w", err)
	}
	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse corrections file: %w", err)
	}
	if rules == nil {
		rules = Rules{}
	}
	return rules, nil
}

// SaveRules overwrites the rule file with the full set.
func SaveRules(path string, rules Rules) error {
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corrections: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write corrections file: %w", err)
	}
	return nil
}

// Replacer applies a rule set in a single combined pass. Building one pattern
// over all keys keeps one rule's output from being re-matched by another
// rule's pattern, which sequential per-rule replacement would not.
type Replacer struct {
	re     *regexp.Regexp
	byKey  map[string]string
	nrules int
}

// NewReplacer compiles the rule set. Keys are escaped before compilation since
// wrong text may contain pattern metacharacters. Longer keys are tried first
// so overlapping keys resolve deterministically.
func NewReplacer(rules Rules) *Replacer {
	if len(rules) == 0 {
		return &Replacer{}
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = regexp.QuoteMeta(k)
	}

	// Matching is case-insensitive; lookup goes through a lowercased key map
	// and the replacement is taken verbatim from the rule. No word-boundary
	// anchors: \b is unreliable for non-Latin scripts.
	byKey := make(map[string]string, len(keys))
	for _, k := range keys {
		byKey[strings.ToLower(k)] = rules[k]
	}

	return &Replacer{
		re:     regexp.MustCompile(`(?i)(` + strings.Join(escaped, "|") + `)`),
		byKey:  byKey,
		nrules: len(rules),
	}
}

// Len reports how many rules the replacer was compiled from.
func (rp *Replacer) Len() int { return rp.nrules }

// Apply rewrites every rule occurrence in text and reports how many
// replacements were made.
func (rp *Replacer) Apply(text string) (string, int) {
	if rp.re == nil {
		return text, 0
	}
	count := 0
	out := rp.re.ReplaceAllStringFunc(text, func(match string) string {
		replacement, ok := rp.byKey[strings.ToLower(match)]
		if !ok {
			return match
		}
		count++
		return replacement
	})
	return out, count
}

// ApplyAll corrects every segment's text and returns the new list with the
// total replacement count. Translations are left untouched.
func (rp *Replacer) ApplyAll(segments []Segment) ([]Segment, int) {
	out := make([]Segment, len(segments))
	copy(out, segments)
	total := 0
	for i := range out {
		corrected, n := rp.Apply(out[i].Text)
		out[i].Text = corrected
		total += n
	}
	return out, total
}
