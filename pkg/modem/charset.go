package modem

import (
	"fmt"
	"math"
)

// Charset is the ordered set of transmittable characters. The index of a
// character is stable and defines its tone frequency.
type Charset string

// DefaultCharset holds 43 characters: letters, digits, space and punctuation.
const DefaultCharset Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,?!'-"

type UnsupportedCharacterError struct {
	Char rune
}

func (e UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("modem: character %q is not in the charset", e.Char)
}

func (c Charset) Len() int {
	return len([]rune(string(c)))
}

// Index returns the position of ch in the charset, or -1.
func (c Charset) Index(ch rune) int {
	for i, r := range []rune(string(c)) {
		if r == ch {
			return i
		}
	}
	return -1
}

func (c Charset) At(i int) rune {
	return []rune(string(c))[i]
}

func (c Charset) validate() error {
	if c.Len() == 0 {
		return fmt.Errorf("modem: charset is empty")
	}
	seen := make(map[rune]bool, c.Len())
	for _, r := range string(c) {
		if seen[r] {
			return fmt.Errorf("modem: charset contains %q twice", r)
		}
		seen[r] = true
	}
	return nil
}

// FrequencyMap assigns freq(i) = BaseFreq + i*StepFreq to charset index i.
type FrequencyMap struct {
	Charset  Charset
	BaseFreq float64
	StepFreq float64
}

func (m FrequencyMap) FrequencyOf(ch rune) (float64, error) {
	i := m.Charset.Index(ch)
	if i < 0 {
		return 0, UnsupportedCharacterError{Char: ch}
	}
	return m.BaseFreq + float64(i)*m.StepFreq, nil
}

func (m FrequencyMap) MaxFreq() float64 {
	return m.BaseFreq + float64(m.Charset.Len()-1)*m.StepFreq
}

// NearestChar returns the charset entry whose frequency is closest to freq
// and within tol Hz, together with the deviation. On an exact tie the lower
// index wins.
func (m FrequencyMap) NearestChar(freq, tol float64) (ch rune, deviation float64, ok bool) {
	n := m.Charset.Len()
	pos := (freq - m.BaseFreq) / m.StepFreq
	lo := int(math.Floor(pos))
	hi := lo + 1
	if lo < 0 {
		lo = 0
	}
	if lo > n-1 {
		lo = n - 1
	}
	if hi < 0 {
		hi = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	best := lo
	if math.Abs(freq-(m.BaseFreq+float64(hi)*m.StepFreq)) < math.Abs(freq-(m.BaseFreq+float64(lo)*m.StepFreq)) {
		best = hi
	}
	deviation = freq - (m.BaseFreq + float64(best)*m.StepFreq)
	if math.Abs(deviation) > tol {
		return 0, 0, false
	}
	return m.Charset.At(best), deviation, true
}
