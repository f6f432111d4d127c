package sdp

import (
	"bufio"
	"errors"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	// FailOnWarning makes unsupported values reject the document instead of
	// being reported as warnings.
	FailOnWarning bool
	// Logger receives per-line diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// Report is the result of checking a whole document.
type Report struct {
	// Lines holds every successfully parsed line in document order.
	Lines []Line
	// Failures are the outcomes that reject the document.
	Failures []*ParseError
	// Warnings are unsupported outcomes downgraded to advisories. Empty when
	// FailOnWarning is set, since those outcomes land in Failures.
	Warnings []*ParseError
}

func (r *Report) Accepted() bool {
	return len(r.Failures) == 0
}

// Err joins all failures into one error, or returns nil for an accepted report.
func (r *Report) Err() error {
	if r.Accepted() {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

type Parser struct {
	failOnWarning bool
	log           zerolog.Logger
}

func NewParser(cfg Config) *Parser {
	p := &Parser{failOnWarning: cfg.FailOnWarning, log: zerolog.Nop()}
	if cfg.Logger != nil {
		p.log = *cfg.Logger
	}
	return p
}

// Parse reports whether doc is accepted. Empty documents are rejected.
func Parse(doc string, failOnWarning bool) bool {
	return NewParser(Config{FailOnWarning: failOnWarning}).Parse(doc)
}

func (p *Parser) Parse(doc string) bool {
	r, err := p.Check(doc)
	return err == nil && r.Accepted()
}

// Check parses every line of doc and collects the outcomes. The only error
// returned is ErrEmptyDocument; line failures are recorded in the report.
// Lines are split on "\n" with a trailing "\r" dropped, and have no length
// limit.
func (p *Parser) Check(doc string) (*Report, error) {
	if doc == "" {
		return nil, ErrEmptyDocument
	}

	lines := strings.Split(doc, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	report := &Report{}
	for i, text := range lines {
		p.record(report, i+1, strings.TrimSuffix(text, "\r"))
	}
	p.finish(report)
	return report, nil
}

func (p *Parser) finish(report *Report) {
	for _, f := range report.Failures {
		p.log.Error().Int("line", f.Number).Str("kind", f.Kind.String()).Str("text", f.Line).Msg(f.Message)
	}
}

func (p *Parser) record(report *Report, lineNum int, text string) {
	l, perr := parseLine(text)
	if perr == nil {
		p.log.Debug().Int("line", lineNum).Str("field", fieldName(l.Field())).Object("value", l).Msg("parsed successfully")
		report.Lines = append(report.Lines, l)
		return
	}

	perr.Number = lineNum
	switch perr.Kind {
	case KindUnsupported:
		if p.failOnWarning {
			report.Failures = append(report.Failures, perr)
			return
		}
		p.log.Warn().Int("line", lineNum).Str("text", perr.Line).Msgf("unsupported value encountered: %s", perr.Message)
		report.Warnings = append(report.Warnings, perr)
	default:
		report.Failures = append(report.Failures, perr)
	}
}

type Decoder struct {
	r *bufio.Reader
	p *Parser
}

func NewDecoder(r io.Reader, cfg Config) *Decoder {
	return &Decoder{r: bufio.NewReader(r), p: NewParser(cfg)}
}

// Decode reads the whole document from the underlying reader and checks it.
// Lines are split the same way as Check and are not limited in length. A read
// failure other than io.EOF discards the report and is returned wrapped;
// line outcomes go to the report.
func (d *Decoder) Decode() (*Report, error) {
	report := &Report{}
	lineNum := 0
	for {
		text, err := d.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, pkgerrors.Wrap(err, "error while reading sdp")
		}
		if text != "" {
			lineNum++
			text = strings.TrimSuffix(text, "\n")
			d.p.record(report, lineNum, strings.TrimSuffix(text, "\r"))
		}
		if err == io.EOF {
			break
		}
	}
	if lineNum == 0 {
		return nil, ErrEmptyDocument
	}
	d.p.finish(report)
	return report, nil
}
