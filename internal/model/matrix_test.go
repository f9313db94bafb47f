package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		rotation Rotation
		expected []string
	}{
		{"bar by 0", []string{"###"}, Rotate0, []string{"###"}},
		{"bar by 90", []string{"###"}, Rotate90, []string{"#", "#", "#"}},
		{"bar by 180", []string{"###"}, Rotate180, []string{"###"}},
		{"L by 90", []string{"#.", "##"}, Rotate90, []string{"##", "#."}},
		{"L by 180", []string{"#.", "##"}, Rotate180, []string{"##", ".#"}},
		{"L by 270", []string{"#.", "##"}, Rotate270, []string{".#", "##"}},
		{"horse by 90", []string{"##.", ".##"}, Rotate90, []string{".#", "##", "#."}},
		{"wide by 270", []string{"####", "#..."}, Rotate270, []string{"#.", "#.", "#.", "##"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Rotate(ParseMatrix(tt.in...), tt.rotation)
			if !result.Equal(ParseMatrix(tt.expected...)) {
				t.Errorf("Rotate(%s, %d)\ngot:  %s\nwant: %s",
					ParseMatrix(tt.in...), tt.rotation, result, ParseMatrix(tt.expected...))
			}
		})
	}
}

func TestRotateFourQuarterTurnsIsIdentity(t *testing.T) {
	shapes := [][]string{
		{"#"},
		{"###"},
		{"##.", ".##"},
		{"###", "###", "###"},
		{"#..", "###", "..#", "..#"},
	}
	for _, rows := range shapes {
		m := ParseMatrix(rows...)
		turned := Rotate(Rotate(Rotate(Rotate(m, Rotate90), Rotate90), Rotate90), Rotate90)
		assert.True(t, m.Equal(turned), "%s came back as %s", m, turned)
		assert.True(t, m.Equal(Rotate(m, Rotate0)))
		assert.True(t, Rotate(m, Rotate180).Equal(Rotate(Rotate(m, Rotate90), Rotate90)))
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	m := ParseMatrix("####", "####")

	turned := Rotate(m, Rotate90)
	assert.Equal(t, 4, turned.Rows())
	assert.Equal(t, 2, turned.Cols())
	assert.Equal(t, m.Size(), turned.Size())
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	m := ParseMatrix("##.", ".##")
	original := m.Clone()

	_ = Rotate(m, Rotate270)
	assert.Equal(t, original, m)
}

func TestRotationValues(t *testing.T) {
	assert.True(t, Rotate270.Valid())
	assert.False(t, Rotation(45).Valid())
	assert.False(t, Rotation(360).Valid())
	assert.Equal(t, Rotate0, Rotate270.Next())
	assert.Equal(t, Rotate90, Rotate0.Next())
}

func TestMatrixJSON(t *testing.T) {
	m := ParseMatrix("#.", "##")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,0],[1,1]]`, string(data))

	var decoded Matrix
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`[[1,2]]`), &decoded))
}

func TestMatrixAtOutsideIsHole(t *testing.T) {
	m := ParseMatrix("#")
	assert.Equal(t, Filled, m.At(0, 0))
	assert.Equal(t, Hole, m.At(-1, 0))
	assert.Equal(t, Hole, m.At(0, 1))
}
