package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary_Synonyms(t *testing.T) {
	d := DefaultDictionary()

	assert.True(t, d.AreSynonyms("go", "golang"))
	assert.True(t, d.AreSynonyms("golang", "go"))
	assert.True(t, d.AreSynonyms("kubernetes", "k8s"))
	assert.False(t, d.AreSynonyms("go", "python"))
	// verbatim equality is exact, not synonym
	assert.False(t, d.AreSynonyms("go", "go"))
}

func TestDefaultDictionary_Categories(t *testing.T) {
	d := DefaultDictionary()

	assert.Equal(t, CategoryLanguages, d.Category("python"))
	// synonyms resolve to the canonical entry's category
	assert.Equal(t, CategoryLanguages, d.Category("golang"))
	assert.Equal(t, "", d.Category("underwater basket weaving"))
}

func TestDefaultDictionary_ShareCategory(t *testing.T) {
	d := DefaultDictionary()

	assert.True(t, d.ShareCategory("go", "python"))
	assert.False(t, d.ShareCategory("go", "aws"))
	// synonyms are not merely related
	assert.False(t, d.ShareCategory("go", "golang"))
	assert.False(t, d.ShareCategory("unknown skill", "another unknown"))
}

func TestLoadDictionary_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	content := `{"rust": {"synonyms": ["rust lang"], "category": "programming languages"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadDictionary(path)
	require.NoError(t, err)

	// custom entry is present
	assert.True(t, d.AreSynonyms("rust", "rust lang"))
	assert.True(t, d.ShareCategory("rust", "go"))
	// defaults survive the merge
	assert.True(t, d.AreSynonyms("go", "golang"))
}

func TestLoadDictionary_MissingFile(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadDictionary_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := LoadDictionary(path)
	assert.Error(t, err)
}
