package modem

// ChecksumChar maps the sum of the message's code points onto the charset.
// Detection only; a substitution that preserves the modular sum passes.
func (c Charset) ChecksumChar(text string) rune {
	sum := 0
	for _, ch := range text {
		sum += int(ch)
	}
	return c.At(sum % c.Len())
}

func (c Charset) VerifyChecksum(text string, checksum rune) bool {
	return c.ChecksumChar(text) == checksum
}
