// ABOUTME: Chunker slices document text into fixed-width retrieval windows
// ABOUTME: Non-overlapping, original order, final window possibly shorter
package core

// Chunker splits raw document text into consecutive non-overlapping windows
// of a fixed rune width. Position in the output is the chunk's identity.
type Chunker struct {
	size int
}

// NewChunker creates a chunker with the given window size in runes.
func NewChunker(size int) *Chunker {
	if size < 1 {
		size = 1
	}
	return &Chunker{size: size}
}

// Split slices text into chunks. Empty text yields no chunks; text shorter
// than the window yields exactly one chunk equal to the text. Concatenating
// the result always reconstructs the input.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+c.size-1)/c.size)
	for start := 0; start < len(runes); start += c.size {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
