package degree

import (
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
)

func strsOrNil(labels []*string) []any {
	res := make([]any, len(labels))
	for i, l := range labels {
		if l == nil {
			res[i] = nil
		} else {
			res[i] = *l
		}
	}
	return res
}

var cmaj7 = model.Voicing{
	Frets:    []int{-1, 3, 2, 0, 0, 0},
	Fingers:  []int{0, 3, 2, 0, 0, 0},
	BaseFret: 1,
	Midi:     []int{48, 52, 55, 59, 64},
}

func TestLabelVoicingMaj7(t *testing.T) {
	labels := LabelVoicing(cmaj7, 0, "maj7")
	assert.Equal(t,
		[]any{nil, "R", "3", "5", "7", "3"},
		strsOrNil(labels))
}

func TestLabelVoicingDominant(t *testing.T) {
	c7 := model.Voicing{
		Frets: []int{-1, 3, 2, 3, 1, 0},
		Midi:  []int{48, 52, 58, 60, 64},
	}
	labels := LabelVoicing(c7, 0, "7")
	assert.Equal(t,
		[]any{nil, "R", "3", "b7", "R", "3"},
		strsOrNil(labels))
}

func TestLabelVoicingMinorSeventhOffRoot(t *testing.T) {
	bbm7 := model.Voicing{
		Frets: []int{-1, 1, 3, 1, 2, 1},
		Midi:  []int{46, 53, 56, 61, 65},
	}
	labels := LabelVoicing(bbm7, 10, "m7")
	assert.Equal(t,
		[]any{nil, "R", "5", "b7", "b3", "5"},
		strsOrNil(labels))
}

// Unknown qualities approximate with the major-triad formula instead
// of failing.
func TestLabelVoicingUnknownQualityFallsBack(t *testing.T) {
	cmaj := model.Voicing{
		Frets: []int{-1, 3, 2, 0, 1, 0},
		Midi:  []int{48, 52, 55, 60, 64},
	}
	labels := LabelVoicing(cmaj, 0, "somethingweird")
	assert.Equal(t,
		[]any{nil, "R", "3", "5", "R", "3"},
		strsOrNil(labels))
}

// A color tone outside the nominal formula resolves through the
// priority list; a ninth over a plain "9" chord labels as "2".
func TestLabelVoicingColorToneUsesPriorityList(t *testing.T) {
	c9 := model.Voicing{
		Frets: []int{-1, 3, 2, 3, 3, -1},
		Midi:  []int{48, 52, 58, 62},
	}
	labels := LabelVoicing(c9, 0, "9")
	assert.Equal(t,
		[]any{nil, "R", "3", "b7", "2", nil},
		strsOrNil(labels))
}

// Degrees with no formula or priority entry (e.g. b9) stay unlabeled.
func TestLabelVoicingUnmatchedDegreeIsNil(t *testing.T) {
	v := model.Voicing{
		Frets: []int{0},
		Midi:  []int{61}, // Db over a C chord
	}
	labels := LabelVoicing(v, 0, "")
	assert.Equal(t, []any{nil}, strsOrNil(labels))
}

func TestLabelVoicingDeterministic(t *testing.T) {
	a := LabelVoicing(cmaj7, 0, "maj7")
	b := LabelVoicing(cmaj7, 0, "maj7")
	assert.Equal(t, strsOrNil(a), strsOrNil(b))
}

func TestFormulaFallback(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"R", "b3", "5", "b7"}, Formula("m7"))
	assert.Equal([]string{"R", "3", "5"}, Formula("no-such-quality"))
}
