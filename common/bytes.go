package common

// CopyBytes returns a detached copy of b. Callers that keep byte slices
// beyond the lifetime of their source buffer must copy them first.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
