package charset

import (
	"unicode/utf8"

	"github.com/gogs/chardet"

	"github.com/compose-network/b64encoder/x/apperr"
)

// Detection is the best guess for the encoding of a buffer.
type Detection struct {
	Name       string
	Charset    string
	Confidence int
}

// Detect guesses which registered encoding data is written in.
//
// chardet has no recogniser for every registered code page (ibm866 has none),
// so its answer is checked against a letter-frequency score of each registered
// encoding. chardet wins when it names the best scoring encoding, otherwise the
// best score does.
func Detect(data []byte, reg Registry) (Detection, error) {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return Detection{}, apperr.New(apperr.KindUnsupportedEncodingPair, "could not detect encoding").WithCause(err)
	}

	best, ok := bestScore(data, reg)

	if name, known := NameForCharset(reg, result.Charset); known && (!ok || name == best.name) {
		return Detection{Name: name, Charset: result.Charset, Confidence: result.Confidence}, nil
	}
	if ok {
		return Detection{Name: best.name, Charset: best.charset, Confidence: best.confidence}, nil
	}

	return Detection{Charset: result.Charset, Confidence: result.Confidence},
		apperr.Newf(apperr.KindUnsupportedEncodingPair, "detected charset %s is not supported", result.Charset).
			WithContext("charset", result.Charset).
			WithContext("confidence", result.Confidence)
}

type score struct {
	name       string
	charset    string
	points     int
	confidence int
}

// bestScore decodes data with every registered encoding and returns the one
// that reads most like Russian text. Lowercase letters score higher than
// capitals because the wrong KOI8-R/CP1251 reading swaps the case.
func bestScore(data []byte, reg Registry) (score, bool) {
	var best score
	found := false

	for _, name := range reg.Names() {
		pair, _ := reg.Lookup(name)
		tc, err := NewTranscoder(pair)
		if err != nil {
			continue
		}
		text, err := tc.ToUnicode(data)
		if err != nil {
			continue
		}

		points, nonASCII := letterPoints(text)
		if nonASCII == 0 || points <= 0 {
			continue
		}
		if !found || points > best.points {
			best = score{
				name:       name,
				charset:    tc.Pair().Legacy,
				points:     points,
				confidence: min(100, 100*points/(2*nonASCII)),
			}
			found = true
		}
	}
	return best, found
}

func letterPoints(text []byte) (points, nonASCII int) {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if r < utf8.RuneSelf {
			continue
		}
		nonASCII++

		switch {
		case (r >= 'а' && r <= 'я') || r == 'ё':
			points += 2
		case (r >= 'А' && r <= 'Я') || r == 'Ё':
			points++
		default:
			points--
		}
	}
	return points, nonASCII
}

// NameForCharset maps a charset label (any alias) to the registered name whose
// legacy side resolves to the same encoding.
func NameForCharset(reg Registry, label string) (string, bool) {
	target, ok := resolve(label)
	if !ok {
		return "", false
	}
	for _, name := range reg.Names() {
		pair, _ := reg.Lookup(name)
		cp, ok := resolve(pair.Legacy)
		if ok && cp.label == target.label {
			return name, true
		}
	}
	return "", false
}
