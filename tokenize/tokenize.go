// Package tokenize turns raw text into lowercase word tokens.
//
// A token is a maximal run of ASCII letters, case-folded to lowercase.
// Every other byte (digits, punctuation, whitespace, non-ASCII) is a
// separator; consecutive separators collapse into one split point and are
// never part of a token.
//
//	"The cat's 2nd-best!" → the, cat, s, nd, best
//
// Tokens and Scan are lazy: nothing is allocated beyond the token being
// yielded. Tokens over a string may be ranged over any number of times.
package tokenize

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"math"
	"strings"
)

// scanBufSize is the initial read buffer of Scan. The buffer grows as
// needed: a letter run has no length limit.
const scanBufSize = 64 * 1024

// isLetter reports whether b is an ASCII letter.
func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Tokens returns a lazy, restartable sequence of tokens in text.
// Empty or separator-only text yields nothing.
// Complexity: O(len(text)) per full iteration.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(text); i++ {
			if isLetter(text[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(strings.ToLower(text[start:i])) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(strings.ToLower(text[start:]))
		}
	}
}

// Tokenize collects Tokens(text) into a slice. Never returns nil.
func Tokenize(text string) []string {
	out := make([]string, 0, len(text)/5)
	for tok := range Tokens(text) {
		out = append(out, tok)
	}

	return out
}

// SplitLetters is a bufio.SplitFunc producing lowercase letter runs.
// It lets a bufio.Scanner tokenize a stream without loading it whole.
func SplitLetters(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip leading separators.
	start := 0
	for start < len(data) && !isLetter(data[start]) {
		start++
	}
	// Scan until the first separator after the run.
	for i := start; i < len(data); i++ {
		if !isLetter(data[i]) {
			return i + 1, bytes.ToLower(data[start:i]), nil
		}
	}
	// A run touching EOF is complete.
	if atEOF && len(data) > start {
		return len(data), bytes.ToLower(data[start:]), nil
	}

	// Request more data; drop the separators consumed so far.
	return start, nil, nil
}

// Scan returns a lazy sequence of tokens read from r.
//
// A read failure is yielded once as (“”, err) and ends the sequence.
// Unlike Tokens, the sequence consumes r and is not restartable.
func Scan(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, scanBufSize), math.MaxInt)
		sc.Split(SplitLetters)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}

// Normalize prepares a user-supplied query word for graph lookup:
// surrounding whitespace is trimmed and the word is lowercased.
// Inner characters are left untouched, so "w$rd" still misses the graph.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
