package textsplit

import "strings"

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with 'overlap' characters shared between adjacent chunks to
// preserve context at boundaries. Chunk boundaries prefer a paragraph break,
// then a line break, then a space near the end of the window, falling back
// to a hard cut so no text is ever lost.
func SplitText(text string, chunkSize int, overlap int) []string {
	// A non-positive size would keep the scan from ever advancing.
	if chunkSize <= 0 {
		return nil
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for start := 0; start < totalLen; {
		end := start + chunkSize
		if end >= totalLen {
			end = totalLen
		} else {
			end = adjustBoundary(runes, start, end)
		}

		chunk := string(runes[start:end])
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}

		if end == totalLen {
			break
		}
		next := end - overlap
		if next <= start {
			next = start + step
		}
		start = next
	}

	return chunks
}

// adjustBoundary searches backward from 'end' for a natural break inside the
// last quarter of the window. Returns 'end' unchanged when none is found.
func adjustBoundary(runes []rune, start, end int) int {
	limit := start + (end-start)*3/4
	for _, sep := range []string{"\n\n", "\n", " "} {
		for i := end - 1; i > limit; i-- {
			if matchesSeparator(runes, i, sep) {
				return i + len([]rune(sep))
			}
		}
	}
	return end
}

func matchesSeparator(runes []rune, pos int, sep string) bool {
	sepRunes := []rune(sep)
	if pos+len(sepRunes) > len(runes) {
		return false
	}
	for j, r := range sepRunes {
		if runes[pos+j] != r {
			return false
		}
	}
	return true
}
