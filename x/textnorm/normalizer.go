package textnorm

const (
	// Bell is the in-band stand-in for a line break.
	Bell byte = 0x07
	// TabWidth is the number of spaces a tab expands to.
	TabWidth = 4
)

// Normalizer prepares text before encoding and restores it after decoding.
type Normalizer struct {
	policy Policy
}

// New creates a normalizer for the given line-ending policy
func New(policy Policy) *Normalizer {
	return &Normalizer{policy: policy}
}

// Normalize copies text up to the first tab or line break. A tab becomes
// TabWidth spaces and a line break becomes Bell; everything after that first
// marker is dropped.
func (n *Normalizer) Normalize(text []byte) []byte {
	out := make([]byte, 0, len(text)+TabWidth)
	for _, b := range text {
		if b == '\t' {
			for i := 0; i < TabWidth; i++ {
				out = append(out, ' ')
			}
			break
		}
		if n.policy.IsNewline(b) {
			out = append(out, Bell)
			break
		}
		out = append(out, b)
	}
	return out
}

// Denormalize replaces every Bell in text with LF.
func (n *Normalizer) Denormalize(text []byte) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		if b == Bell {
			out[i] = '\n'
			continue
		}
		out[i] = b
	}
	return out
}
