package csvfind

// Default format parameters and detection depths. The candidate set and
// depths are passed into the detection functions explicitly so tests can
// override them.
const (
	// DefaultEnclosure is the field enclosure character.
	DefaultEnclosure = '"'
	// DefaultEscape is the escape character inside enclosures.
	DefaultEscape = '\\'
	// DetectionDepth is how many raw physical lines the delimiter sniffer
	// reads before committing to a candidate.
	DetectionDepth = 5
	// HeaderProbeDepth is how many rows after row 0 the header heuristic
	// inspects.
	HeaderProbeDepth = 5
)

// delimiterCandidates is the fixed candidate set for delimiter detection,
// in tie-breaking order.
var delimiterCandidates = []rune{',', ';', '\t', '.', ':', '|'}

// HeaderMode is the caller's tri-state declaration of header presence.
// The zero value is HeaderAuto, so "caller didn't specify" stays distinct
// from "caller said absent".
type HeaderMode int

const (
	// HeaderAuto leaves header presence to the content heuristic.
	HeaderAuto HeaderMode = iota
	// HeaderPresent declares row 0 to be a header.
	HeaderPresent
	// HeaderAbsent declares the file to have no header.
	HeaderAbsent
)

// SourceOption configures OpenSource.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	delimiter    rune
	delimiterSet bool
	enclosure    rune
	escape       rune
	headers      HeaderMode
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		enclosure: DefaultEnclosure,
		escape:    DefaultEscape,
		headers:   HeaderAuto,
	}
}

// WithDelimiter declares the delimiter explicitly, bypassing detection.
func WithDelimiter(delimiter rune) SourceOption {
	return func(c *sourceConfig) {
		c.delimiter = delimiter
		c.delimiterSet = true
	}
}

// WithEnclosure overrides the enclosure character (default '"').
func WithEnclosure(enclosure rune) SourceOption {
	return func(c *sourceConfig) { c.enclosure = enclosure }
}

// WithEscape overrides the escape character (default '\').
func WithEscape(escape rune) SourceOption {
	return func(c *sourceConfig) { c.escape = escape }
}

// WithHeaders declares header presence instead of leaving it to the
// heuristic.
func WithHeaders(mode HeaderMode) SourceOption {
	return func(c *sourceConfig) { c.headers = mode }
}
