// Package extract pulls plain text and a best-effort structured-field
// guess out of uploaded project documents. It sits outside the scoring
// core: its output is returned to the caller as plain data, and the caller
// decides whether to feed the text into an assessment request.
package extract

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FieldGuess is the structured data heuristically recovered from a
// document. Zero values mean "not found"; callers must treat every field
// as advisory.
type FieldGuess struct {
	StatedReductionPercent float64 `json:"stated_reduction_percent,omitempty"`
	TargetYear             int     `json:"target_year,omitempty"`
	BaselineEmissions      float64 `json:"baseline_emissions,omitempty"`
}

// Result is the outcome of one extraction
type Result struct {
	Text       string     `json:"text"`
	SourceKind string     `json:"source_kind"`
	Fields     FieldGuess `json:"fields"`
}

// Extraction heuristics
var (
	reductionPattern = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)\s*(?:%|percent)\s+(?:reduction|decrease|cut)`)
	targetYearPattern = regexp.MustCompile(`by\s+(20[2-9]\d)`)
	baselinePattern   = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*(?:tco2e?|tonnes?\s+(?:of\s+)?co2e?)`)
)

// FromUpload extracts text from an uploaded document. HTML files are
// parsed with goquery; anything else is treated as plain text.
func FromUpload(filename string, r io.Reader) (*Result, error) {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		text, err := FromHTML(r)
		if err != nil {
			return nil, err
		}
		return &Result{Text: text, SourceKind: "html", Fields: GuessFields(text)}, nil
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	text := normalizeWhitespace(string(raw))
	return &Result{Text: text, SourceKind: "text", Fields: GuessFields(text)}, nil
}

// FromHTML strips markup from an HTML document, dropping script and style
// content, and returns normalized plain text.
func FromHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML document: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return // only leaf nodes, avoids duplicating nested text
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		// No body markup; fall back to the whole document text
		return normalizeWhitespace(doc.Text()), nil
	}

	return normalizeWhitespace(strings.Join(parts, " ")), nil
}

// GuessFields scans extracted text for a stated reduction percentage, a
// target year, and a baseline tonnage.
func GuessFields(text string) FieldGuess {
	lower := strings.ToLower(text)
	guess := FieldGuess{}

	if m := reductionPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 && v <= 100 {
			guess.StatedReductionPercent = v
		}
	}

	if m := targetYearPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			guess.TargetYear = v
		}
	}

	if m := baselinePattern.FindStringSubmatch(lower); m != nil {
		cleaned := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil && v > 0 {
			guess.BaselineEmissions = v
		}
	}

	return guess
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
