package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mastikon/internal/newsroom"
)

func TestParseIntakeAssignsMissingIDs(t *testing.T) {
	data := []byte(`
topic: Kebakaran Pasar
location: Pasar Baru
interviewees:
  - id: budi
    name: Budi
    title: Saksi Mata
  - name: Sari
    title: Pedagang
  - id: budi
    name: Joko
    title: Damkar
`)

	intake, err := ParseIntake(data)
	require.NoError(t, err)
	assert.Equal(t, "Kebakaran Pasar", intake.Topic)
	require.Len(t, intake.Interviewees, 3)
	assert.Equal(t, "budi", intake.Interviewees[0].ID)
	assert.NotEmpty(t, intake.Interviewees[1].ID)
	assert.NotEqual(t, "budi", intake.Interviewees[2].ID)
	assert.Equal(t, "Joko", intake.Interviewees[2].Name)
}

func TestParseIntakeRejectsBadYAML(t *testing.T) {
	_, err := ParseIntake([]byte("topic: [unterminated"))
	assert.Error(t, err)
}

func TestWriteIntakeProducesLoadableTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIntake(&buf, newsroom.DefaultIntake()))
	assert.Contains(t, buf.String(), "topic:")

	intake, err := ParseIntake(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, newsroom.DefaultIntake(), intake)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	script := newsroom.TvScript{Slug: "BANJIR", CGs: newsroom.CharacterGenerators{CG1: []string{"A - B"}, CG3: "JAKARTA"}}

	require.NoError(t, SaveJSON(script, path))

	var loaded newsroom.TvScript
	require.NoError(t, LoadJSON(path, &loaded))
	assert.Equal(t, script, loaded)
}

func TestLoadJSONMissingFile(t *testing.T) {
	var out newsroom.TvScript
	assert.Error(t, LoadJSON(filepath.Join(t.TempDir(), "nope.json"), &out))
}
