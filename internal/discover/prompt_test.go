// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scriptedPrompter(input string) (*prompter, *strings.Builder) {
	var out strings.Builder
	return newPrompter(strings.NewReader(input), &out), &out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		defaultAccept bool
		want          promptState
	}{
		{"explicit yes", "y\n", false, stateConfirmed},
		{"spelled out yes", "yes\n", false, stateConfirmed},
		{"uppercase yes", "Y\n", false, stateConfirmed},
		{"empty with default accept", "\n", true, stateConfirmed},
		{"empty without default goes manual", "\n", false, stateManual},
		{"skip", "skip\n", true, stateSkipped},
		{"anything else goes manual", "n\n", true, stateManual},
		{"eof skips", "", true, stateSkipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := scriptedPrompter(tt.input)
			got := p.confirm("accept? ", tt.defaultAccept)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChoose(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIdx   int
		wantState promptState
	}{
		{"first option", "1\n", 0, stateConfirmed},
		{"last option", "3\n", 2, stateConfirmed},
		{"none", "n\n", 0, stateSkipped},
		{"skip", "skip\n", 0, stateSkipped},
		{"manual", "manual\n", 0, stateManual},
		{"out of range then valid", "7\n2\n", 1, stateConfirmed},
		{"garbage then valid", "what\n1\n", 0, stateConfirmed},
		{"eof skips", "", 0, stateSkipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := scriptedPrompter(tt.input)
			idx, state := p.choose(3)
			assert.Equal(t, tt.wantState, state)
			if state == stateConfirmed {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestChooseRePromptsOnInvalidInput(t *testing.T) {
	p, out := scriptedPrompter("0\nnope\n2\n")
	idx, state := p.choose(2)

	assert.Equal(t, stateConfirmed, state)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "Invalid choice")
	assert.Contains(t, out.String(), "Invalid input")
}

func TestManualID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"valid id confirmed", "AbC123xyZ\ny\n", "AbC123xyZ", true},
		{"skip", "skip\n", "", false},
		{"none", "none\n", "", false},
		{"declined then accepted", "AbC123xyZ\nn\nDeF456uvW\ny\n", "DeF456uvW", true},
		{"too short then valid", "abc\nAbC123xyZ\ny\n", "AbC123xyZ", true},
		{"empty line then skip", "\nskip\n", "", false},
		{"eof aborts", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := scriptedPrompter(tt.input)
			id, ok := p.manualID("John Smith")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestManualIDPreservesCase(t *testing.T) {
	p, out := scriptedPrompter("aBcDeF123\ny\n")
	id, ok := p.manualID("John Smith")

	assert.True(t, ok)
	assert.Equal(t, "aBcDeF123", id)
	assert.Contains(t, out.String(), "Search URL")
	assert.Contains(t, out.String(), "Confirmation URL")
}
