package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedCards int
		expectedQ     string
		expectedA     string
		expectedI     string
	}{
		{
			name:          "Simple Q&A",
			input:         "Q: What is the capital of France?\nA: Paris",
			expectedCards: 1,
			expectedQ:     "What is the capital of France?",
			expectedA:     "Paris",
		},
		{
			name:          "Q, A and image",
			input:         "Q: Which flag is this?\nA: Japan\nI: https://img.example/jp.png",
			expectedCards: 1,
			expectedQ:     "Which flag is this?",
			expectedA:     "Japan",
			expectedI:     "https://img.example/jp.png",
		},
		{
			name: "Multiline answer",
			input: `
Q: What are the primary colors?
A: Red
Blue
Yellow
`,
			expectedCards: 1,
			expectedQ:     "What are the primary colors?",
			expectedA:     "Red\nBlue\nYellow",
		},
		{
			name: "Two cards",
			input: `
Q: First question
A: First answer

Q: Second question
A: Second answer
`,
			expectedCards: 2,
		},
		{
			name: "Separator ends a card",
			input: `
Q: One
A: 1
---
Text between cards is ignored.
---
Q: Two
A: 2
`,
			expectedCards: 2,
		},
		{
			name:          "No cards, just text",
			input:         "This is a file with no questions.",
			expectedCards: 0,
		},
		{
			name:          "Prefixes with no space",
			input:         "Q:Question\nA:Answer",
			expectedCards: 1,
			expectedQ:     "Question",
			expectedA:     "Answer",
		},
		{
			name:          "Answer before any question is skipped",
			input:         "A: orphan\nQ: Real\nA: Card",
			expectedCards: 1,
			expectedQ:     "Real",
			expectedA:     "Card",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cards, err := Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Len(t, cards, tc.expectedCards)

			if tc.expectedCards == 1 {
				assert.Equal(t, tc.expectedQ, cards[0].Question)
				assert.Equal(t, tc.expectedA, cards[0].Answer)
				assert.Equal(t, tc.expectedI, cards[0].Image)
			}
		})
	}
}

func TestParseQuestionWithoutAnswer(t *testing.T) {
	input := "Q: Has answer\nA: yes\nQ: Missing answer\n\nQ: Also fine\nA: ok"
	cards, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "[3]")
	assert.Len(t, cards, 2)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("# Deck\n\nQ: 2+2?\nA: 4\n"), 0o644))

	cards, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "2+2?", cards[0].Question)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestParseLongLines(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	cards, err := Parse(strings.NewReader("Q: " + long + "\nA: y\n"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, long, cards[0].Question)

	_, err = Parse(strings.NewReader("Q: " + strings.Repeat("x", maxLineBytes+1) + "\nA: y\n"))
	assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestParseReaderErrorNotValidation(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := Parse(failingReader{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrValidation))
}
