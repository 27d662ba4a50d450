// Package intake simulates the external resume parsing collaborator. File
// type validation is real (extension plus magic-byte sniff); the extracted
// profile is a stand-in produced after a fixed delay, with the phone number
// deliberately left blank so the candidate completes it by hand.
package intake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/crispai/interview-assistant/internal/model"
)

// Sentinel errors for resume intake.
var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

// Accepted resume MIME types.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// allowedExtensions maps file extensions to the MIME type they declare.
var allowedExtensions = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
}

// magicPrefixes holds the leading bytes each accepted type must carry:
// PDF files start with "%PDF", DOCX is a zip container starting with "PK".
var magicPrefixes = map[string]string{
	MIMEPDF:  "%PDF",
	MIMEDOCX: "PK",
}

// Parser validates resume files and yields simulated parse results.
type Parser struct {
	delay    time.Duration
	maxBytes int64
	log      zerolog.Logger
}

// NewParser creates a Parser. delay is how long the simulated parse takes;
// maxBytes caps accepted file size (0 disables the check).
func NewParser(delay time.Duration, maxBytes int64, log zerolog.Logger) *Parser {
	return &Parser{
		delay:    delay,
		maxBytes: maxBytes,
		log:      log.With().Str("component", "resume_intake").Logger(),
	}
}

// Inspect validates the file's content type and size without parsing it.
// The declared type comes from the extension and is confirmed against the
// file's magic bytes.
func (p *Parser) Inspect(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := allowedExtensions[ext]
	if !ok {
		return fmt.Errorf("%w: %q (allowed: .pdf, .docx)", ErrUnsupportedType, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat resume: %w", err)
	}
	if p.maxBytes > 0 && info.Size() > p.maxBytes {
		return fmt.Errorf("%w: %d bytes (max: %d)", ErrTooLarge, info.Size(), p.maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	prefix := magicPrefixes[mimeType]
	head := make([]byte, len(prefix))
	if _, err := f.Read(head); err != nil || string(head) != prefix {
		return fmt.Errorf("%w: content does not match %s", ErrUnsupportedType, mimeType)
	}

	return nil
}

// Parse waits the simulated parsing delay, then returns the extracted
// partial profile. Returns ok=false without a result if ctx is cancelled
// first, so a reset flow never receives a stale profile.
func (p *Parser) Parse(ctx context.Context, path string) (model.CandidateProfile, bool) {
	select {
	case <-ctx.Done():
		p.log.Debug().Str("path", path).Msg("resume parse cancelled")
		return model.CandidateProfile{}, false
	case <-time.After(p.delay):
	}

	name := nameFromFilename(path)
	profile := model.CandidateProfile{
		Name:  name,
		Email: emailFromName(name),
		Phone: "", // always left for the candidate to fill in
	}

	p.log.Debug().Str("path", path).Str("name", name).Msg("resume parsed")
	return profile, true
}

// nameFromFilename guesses a candidate name from the file name, e.g.
// "jane_doe.pdf" becomes "Jane Doe".
func nameFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(stem)

	var words []string
	for _, w := range strings.Fields(stem) {
		switch strings.ToLower(w) {
		case "resume", "cv":
			continue
		}
		words = append(words, strings.ToUpper(w[:1])+strings.ToLower(w[1:]))
	}
	if len(words) == 0 {
		return "John Doe"
	}
	return strings.Join(words, " ")
}

func emailFromName(name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return local + "@email.com"
}
