package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeControl(t *testing.T) {
	tests := []struct {
		raw  string
		want ControlID
	}{
		{"AC-2", "AC-2"},
		{"AC-02", "AC-2"},
		{"ac-02", "AC-2"},
		{"  ia-007 ", "IA-7"},
		{"SI-10", "SI-10"},
		{"AC-0", "AC-0"},
		{"AC-00", "AC-0"},
		{"PM", "PM"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeControl(tt.raw))
		})
	}
}

func TestControlID(t *testing.T) {
	assert.Equal(t, ControlID("AC-2"), ControlID(" ac-2 ").Key())
	assert.Equal(t, "AC", ControlID("ac-17").Family())
	assert.True(t, ControlID("  ").IsZero())
	assert.False(t, ControlID("AC-2").IsZero())
	assert.Equal(t, "SC-7", ControlID("SC-7").String())
}

func TestStripQualifier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no qualifier", "AC-2", "AC-2"},
		{"spaced qualifier", "AC-2 (a)", "AC-2"},
		{"enhancement", "AC-2(1)", "AC-2"},
		{"keeps padding", "AC-02 (b)", "AC-02"},
		{"only qualifier", "(n/a)", ""},
		{"multiple parens", "SI-4 (2) (4)", "SI-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripQualifier(tt.raw))
		})
	}
}

func TestTechniqueID(t *testing.T) {
	sub := NormalizeTechnique(" t1059.001 ")
	assert.Equal(t, TechniqueID("T1059.001"), sub)
	assert.True(t, sub.IsSubtechnique())
	assert.Equal(t, TechniqueID("T1059"), sub.Parent())

	top := TechniqueID("T1078")
	assert.False(t, top.IsSubtechnique())
	assert.Equal(t, top, top.Parent())
	assert.True(t, TechniqueID("").IsZero())
	assert.Equal(t, "T1078", top.String())
}

func TestAllowlist(t *testing.T) {
	a := NewAllowlist("AC-2", "IA-5", "AC-2", "si-4")

	t.Run("membership ignores case", func(t *testing.T) {
		assert.True(t, a.Contains("ac-2"))
		assert.True(t, a.Contains("SI-4"))
		assert.True(t, a.Contains(" IA-5"))
		assert.False(t, a.Contains("AC-3"))
	})

	t.Run("ids keep order and duplicates", func(t *testing.T) {
		assert.Equal(t, []ControlID{"AC-2", "IA-5", "AC-2", "si-4"}, a.IDs())
		assert.Equal(t, 4, a.Len())
	})

	t.Run("unique collapses duplicates", func(t *testing.T) {
		assert.Equal(t, []ControlID{"AC-2", "IA-5", "SI-4"}, a.Unique())
	})

	t.Run("ids are a copy", func(t *testing.T) {
		ids := a.IDs()
		ids[0] = "XX-1"
		assert.Equal(t, ControlID("AC-2"), a.IDs()[0])
	})

	t.Run("nil allowlist", func(t *testing.T) {
		var empty *Allowlist
		assert.False(t, empty.Contains("AC-2"))
		assert.Nil(t, empty.IDs())
		assert.Nil(t, empty.Unique())
		assert.Zero(t, empty.Len())
	})
}
