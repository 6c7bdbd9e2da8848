// core/alignment/alignment_test.go
package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawID(t *testing.T) {
	t.Run("ColonDash", func(t *testing.T) {
		c, rev, err := ParseRawID("chr1:100-200")
		require.NoError(t, err)
		assert.Equal(t, Coord{Name: "chr1", Start: 100, End: 200}, c)
		assert.False(t, rev)
	})

	t.Run("ColonDashReverse", func(t *testing.T) {
		c, rev, err := ParseRawID("chr1:100-200_R")
		require.NoError(t, err)
		assert.Equal(t, Coord{Name: "chr1", Start: 100, End: 200}, c)
		assert.True(t, rev)
	})

	t.Run("Underscore", func(t *testing.T) {
		c, rev, err := ParseRawID("scaffold12_4_99")
		require.NoError(t, err)
		assert.Equal(t, Coord{Name: "scaffold12", Start: 4, End: 99}, c)
		assert.False(t, rev)
	})

	t.Run("UnderscoreReverse", func(t *testing.T) {
		_, rev, err := ParseRawID("scaffold12_4_99_R")
		require.NoError(t, err)
		assert.True(t, rev)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		_, _, err := ParseRawID("consensus")
		require.Error(t, err)
	})
}

// The suffix and the explicit flag are OR-ed into one authoritative field.
func TestResolveOrientationRule(t *testing.T) {
	cases := []struct {
		id   string
		flag bool
		want bool
	}{
		{"chr1:1-10", false, false},
		{"chr1:1-10", true, true},
		{"chr1:1-10_R", false, true},
		{"chr1:1-10_R", true, true},
	}
	for _, c := range cases {
		r := Row{RawID: c.id, Reverse: c.flag}
		require.NoError(t, r.Resolve())
		assert.Equal(t, c.want, r.Reverse, "id=%s flag=%v", c.id, c.flag)
	}
}

func TestMaxCoreLen(t *testing.T) {
	a := &Alignment{Rows: []Row{
		{AlignedSeq: []byte("ACGT"), ColumnOffset: 0},
		{AlignedSeq: []byte("AC-GT"), ColumnOffset: 3},
		{AlignedSeq: []byte("AA"), ColumnOffset: 1},
	}}
	assert.Equal(t, 8, a.MaxCoreLen())
}

func TestReverseComplement(t *testing.T) {
	a := &Alignment{Rows: []Row{
		{AlignedSeq: []byte("ACGT"), ColumnOffset: 0, LocalStart: 1, LocalEnd: 4},
		{AlignedSeq: []byte("GG"), ColumnOffset: 4, LocalStart: 2, LocalEnd: 3, Reverse: true},
	}}
	a.ReverseComplement()

	assert.Equal(t, []byte("ACGT"), a.Rows[0].AlignedSeq)
	assert.Equal(t, 2, a.Rows[0].ColumnOffset)
	assert.True(t, a.Rows[0].Reverse)
	assert.Equal(t, 4, a.Rows[0].LocalStart)
	assert.Equal(t, 1, a.Rows[0].LocalEnd)

	assert.Equal(t, []byte("CC"), a.Rows[1].AlignedSeq)
	assert.Equal(t, 0, a.Rows[1].ColumnOffset)
	assert.False(t, a.Rows[1].Reverse)

	// Applying the transform twice restores the original layout.
	a.ReverseComplement()
	assert.Equal(t, []byte("ACGT"), a.Rows[0].AlignedSeq)
	assert.Equal(t, 0, a.Rows[0].ColumnOffset)
	assert.False(t, a.Rows[0].Reverse)
}

func TestTrim(t *testing.T) {
	t.Run("DropsColumnsAndAdjustsLocals", func(t *testing.T) {
		a := &Alignment{Rows: []Row{
			{AlignedSeq: []byte("ACGTACGT"), ColumnOffset: 0, LocalStart: 1, LocalEnd: 8},
			{AlignedSeq: []byte("-CGTAC"), ColumnOffset: 1, LocalStart: 1, LocalEnd: 5},
		}}
		require.NoError(t, a.Trim(2, 1))

		assert.Equal(t, []byte("GTACG"), a.Rows[0].AlignedSeq)
		assert.Equal(t, 0, a.Rows[0].ColumnOffset)
		assert.Equal(t, 3, a.Rows[0].LocalStart)
		assert.Equal(t, 7, a.Rows[0].LocalEnd)

		// Row 2 only loses its leading gap; locals stay put.
		assert.Equal(t, []byte("CGTAC"), a.Rows[1].AlignedSeq)
		assert.Equal(t, 0, a.Rows[1].ColumnOffset)
		assert.Equal(t, 1, a.Rows[1].LocalStart)
		assert.Equal(t, 5, a.Rows[1].LocalEnd)
	})

	t.Run("RejectsOverTrim", func(t *testing.T) {
		a := &Alignment{Rows: []Row{{AlignedSeq: []byte("ACGT")}}}
		require.Error(t, a.Trim(2, 2))
		require.Error(t, a.Trim(-1, 0))
	})
}
