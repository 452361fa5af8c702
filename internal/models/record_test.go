package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Parent(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected Path
	}{
		{name: "deep path", path: Path{1, 1, 0, 2}, expected: Path{1, 1, 0}},
		{name: "single segment", path: Path{3}, expected: Path{}},
		{name: "empty path", path: Path{}, expected: Path{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(tt.path.Parent()))
		})
	}
}

func TestPath_LastAndString(t *testing.T) {
	p := Path{1, 0, 7}

	last, ok := p.Last()
	assert.True(t, ok)
	assert.Equal(t, 7, last)
	assert.Equal(t, "1>0>7", p.String())

	_, ok = Path{}.Last()
	assert.False(t, ok)
	assert.Equal(t, "", Path{}.String())
}

func TestDiffRecord_IsNodeDelete(t *testing.T) {
	assert.True(t, (&DiffRecord{Type: DiffDelete, Content: ContentNone}).IsNodeDelete())
	assert.True(t, (&DiffRecord{Type: DiffDelete, Content: ContentHTML}).IsNodeDelete())
	assert.False(t, (&DiffRecord{Type: DiffDelete, Content: ContentAttribute}).IsNodeDelete())
	assert.False(t, (&DiffRecord{Type: DiffUpdate, Content: ContentText}).IsNodeDelete())
}
