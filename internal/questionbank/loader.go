package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the bank document major version this build reads.
const SupportedMajor = "v1"

//go:embed data/questions.json
var defaultBank []byte

// ErrUnsupportedVersion is returned for bank documents with an invalid
// version or a major version other than SupportedMajor.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

// ValidationError reports a bank document that does not match the schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question bank: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// record is the on-disk shape of one question.
type record struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    *string  `json:"difficulty,omitempty"`
	Category      string   `json:"category,omitempty"`
}

type envelope struct {
	Version   string   `json:"version"`
	Questions []record `json:"questions"`
}

// Document is a decoded bank file.
type Document struct {
	// Version is empty for bare-array documents.
	Version   string
	Questions []Question
}

// Decode validates and decodes a bank document without building a Bank.
func Decode(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var records []record
	doc := &Document{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &ValidationError{Err: err}
		}
		v, err := checkVersion(env.Version)
		if err != nil {
			return nil, err
		}
		doc.Version = v
		records = env.Questions
	} else if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &ValidationError{Err: err}
	}

	doc.Questions = make([]Question, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		q := rec.toQuestion(i)
		if first, dup := seen[q.ID]; dup {
			return nil, &ValidationError{Err: fmt.Errorf(
				"duplicate question id %q at questions %d and %d", q.ID, first+1, i+1)}
		}
		seen[q.ID] = i
		doc.Questions = append(doc.Questions, q)
	}
	return doc, nil
}

// checkVersion normalises v to canonical semver and enforces the major.
func checkVersion(v string) (string, error) {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q is not semver", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return "", fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return semver.Canonical(v), nil
}

func (r record) toQuestion(i int) Question {
	q := Question{
		ID:           r.ID,
		Text:         r.Question,
		CorrectIndex: r.CorrectAnswer,
		Explanation:  r.Explanation,
		CategoryID:   r.Category,
		Difficulty:   Easy,
	}
	if q.ID == "" {
		q.ID = fmt.Sprintf("q%d", i+1)
	}
	if q.CategoryID == "" {
		q.CategoryID = DefaultCategoryID
	}
	if r.Difficulty != nil {
		if d, err := ParseDifficulty(*r.Difficulty); err == nil {
			q.Difficulty = d
		}
	}
	copy(q.Options[:], r.Options)
	return q
}

// Load decodes a bank document and builds a Bank over the default
// category catalogue.
func Load(r io.Reader, opts ...Option) (*Bank, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(doc.Questions, opts...), nil
}

// LoadFile loads a bank document from path.
func LoadFile(path string, opts ...Option) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Default loads the bank bundled with the binary.
func Default(opts ...Option) (*Bank, error) {
	return Load(bytes.NewReader(defaultBank), opts...)
}
