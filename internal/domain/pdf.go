package domain

// Backend names accepted by EXTRACTOR_BACKEND.
const (
	BackendLedongthuc = "ledongthuc"
	BackendFitz       = "fitz"
)

// Backends lists every backend name config.NewExtractor resolves.
var Backends = []string{BackendLedongthuc, BackendFitz}

// Extractor is the opaque external text-extraction capability.
// Implementations receive the caller's buffer and must not retain it.
type Extractor interface {
	Name() string
	Extract(document []byte) (string, error)
}

// TextExtractor is the bridge contract exposed to hosts.
type TextExtractor interface {
	ExtractText(document []byte) (string, error)
}

// ExtractionResult is what a host hands back to its own callers.
type ExtractionResult struct {
	Text      string `json:"text"`
	Extractor string `json:"extractor"`
	Bytes     int    `json:"bytes"`
}
