package extract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxSamples caps how many records or lines one run examines.
	DefaultMaxSamples = 50000

	// minRawLen is the first filter, applied to candidate text before
	// whitespace normalization.
	minRawLen = 10

	// Normalized snippets must land strictly inside this range to be
	// retained in the corpus.
	minSnippetLen = 20
	maxSnippetLen = 1000
)

// Result holds the outcome of one extraction run.
type Result struct {
	// Snippets are the retained, normalized lines in encounter order.
	// Duplicates are permitted.
	Snippets []string

	// Candidates counts texts that passed the raw-length filter, before
	// normalization and the final length filter.
	Candidates int

	// UsedFallback is true when the input was not valid JSON and was
	// scanned as plain text instead.
	UsedFallback bool

	// ReadFailed carries an I/O error swallowed during the plain-text
	// fallback. The snippet sequence is empty in that case, identical to
	// a legitimately empty input; this field is the only signal.
	ReadFailed error
}

// Count returns the number of snippets retained.
func (r Result) Count() int {
	return len(r.Snippets)
}

// fieldRule maps a set of record keys to a candidate text. Rules are
// evaluated in order and a later match overwrites an earlier one, so the
// instruction/prompt pair rules always win over the plain field probe.
type fieldRule struct {
	key    string
	render func(rec map[string]any) string
}

// textFields are probed in this fixed order; the first present key wins
// within this rule.
var textFields = []string{"text", "output", "response", "completion", "answer", "content"}

var fieldRules = []fieldRule{
	{
		key: "",
		render: func(rec map[string]any) string {
			for _, f := range textFields {
				if _, ok := rec[f]; ok {
					return stringValue(rec[f])
				}
			}
			return ""
		},
	},
	// prompt before instruction: with later-overwrites evaluation this
	// keeps instruction as the stronger of the two pair rules.
	{
		key: "prompt",
		render: func(rec map[string]any) string {
			return stringValue(rec["prompt"]) + " " + stringValue(rec["completion"])
		},
	},
	{
		key: "instruction",
		render: func(rec map[string]any) string {
			return stringValue(rec["instruction"]) + " " + stringValue(rec["output"])
		},
	},
}

// Extract reads the input file and produces cleaned conversational
// snippets. The file is parsed as a JSON array of records when possible;
// anything else that is not valid JSON is scanned line by line. A primary
// read failure is returned to the caller — the input is expected to exist.
func Extract(path string, maxSamples int) (Result, error) {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res := scanPlainText(path, maxSamples)
		res.finish()
		return res, nil
	}

	res := Result{}
	if items, ok := doc.([]any); ok {
		if len(items) > maxSamples {
			items = items[:maxSamples]
		}
		for _, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if text := candidateText(rec); text != "" {
				res.Snippets = append(res.Snippets, strings.TrimSpace(text))
			}
		}
	}
	// A valid JSON document that is not an array yields nothing; the
	// fallback is only for malformed JSON.

	res.finish()
	return res, nil
}

// candidateText applies the field rules to one record and returns the
// accepted candidate, or "" when nothing passes the raw-length filter.
func candidateText(rec map[string]any) string {
	var text string
	for _, rule := range fieldRules {
		if rule.key != "" {
			if _, ok := rec[rule.key]; !ok {
				continue
			}
		}
		if rendered := rule.render(rec); rule.key != "" || rendered != "" {
			text = rendered
		}
	}
	if utf8.RuneCountInString(text) > minRawLen {
		return text
	}
	return ""
}

// scanPlainText is the fallback for inputs that fail JSON parsing: trimmed
// lines longer than the raw-length filter are accepted until maxSamples is
// reached. I/O failures are swallowed into an empty result, with the cause
// kept on Result.ReadFailed.
func scanPlainText(path string, maxSamples int) Result {
	res := Result{UsedFallback: true}

	f, err := os.Open(path)
	if err != nil {
		res.ReadFailed = err
		return res
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024) // 10MB line buffer
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if utf8.RuneCountInString(line) > minRawLen {
			res.Snippets = append(res.Snippets, line)
			if len(res.Snippets) >= maxSamples {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		res.ReadFailed = err
		res.Snippets = nil
	}

	return res
}

// finish normalizes accepted candidates and applies the final length
// filter, leaving only corpus-ready snippets on the result.
func (r *Result) finish() {
	r.Candidates = len(r.Snippets)

	kept := r.Snippets[:0]
	for _, s := range r.Snippets {
		s = Normalize(s)
		if n := utf8.RuneCountInString(s); n > minSnippetLen && n < maxSnippetLen {
			kept = append(kept, s)
		}
	}
	r.Snippets = kept
}

// Clean runs texts that arrived outside the file path (e.g. database
// rows) through the same candidate and corpus filters as Extract.
func Clean(texts []string) []string {
	res := Result{}
	for _, t := range texts {
		if utf8.RuneCountInString(t) > minRawLen {
			res.Snippets = append(res.Snippets, strings.TrimSpace(t))
		}
	}
	res.finish()
	return res.Snippets
}

// Normalize collapses all whitespace runs, including newlines and tabs,
// into single spaces and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stringValue reads a record field as text. Records carry no schema, so
// non-string values are treated as absent.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
