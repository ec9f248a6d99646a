package table

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestFormatAlignsByDisplayWidth(t *testing.T) {
	rows := [][]string{
		{"Munição", "30"},
		{"Cadência de Tiro", "600"},
		{"Dano", "68"},
	}
	lines := Format(rows, []Alignment{AlignLeft, AlignRight})
	assert.Equal(t, []string{
		"Munição            30",
		"Cadência de Tiro  600",
		"Dano               68",
	}, lines)
}

func TestFormatWideRunes(t *testing.T) {
	lines := Format([][]string{{"武器", "1"}, {"ab", "22"}}, []Alignment{AlignLeft, AlignLeft})
	assert.Equal(t, runewidth.StringWidth(lines[0]), 7)
	assert.Equal(t, "ab    22", lines[1])
}

func TestFormatWidthStretchesLastGap(t *testing.T) {
	lines := FormatWidth([][]string{{"Dano", "68"}, {"Alcance", "28"}}, []Alignment{AlignLeft, AlignRight}, 20)
	for _, line := range lines {
		assert.Equal(t, 20, runewidth.StringWidth(line), line)
	}
	assert.Equal(t, "Dano              68", lines[0])

	narrow := FormatWidth([][]string{{"Dano", "68"}}, nil, 3)
	assert.Equal(t, []string{"Dano  68"}, narrow)
}

func TestFormatRaggedRows(t *testing.T) {
	lines := Format([][]string{{"a", "b", "c"}, {"dd"}}, nil)
	assert.Equal(t, []string{"a   b  c", "dd     "}, lines)
}

func TestFormatEmpty(t *testing.T) {
	assert.Nil(t, Format(nil, nil))
}
