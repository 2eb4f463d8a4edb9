package sites_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gofresh/internal/sites"
)

func writeProfilesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfiles_Valid(t *testing.T) {
	path := writeProfilesFile(t, `
profiles:
  - name: cnet
    domains:
      - cnet.com
    rules:
      - selector: ".c-globalUpdatedDate time[datetime]"
      - selector: "time[datetime][itemprop='dateModified']"
  - name: zdnet
    domains:
      - zdnet.com
      - zdnet.co.uk
    rules:
      - selector: ".storyMeta time[datetime]"
`)

	profiles, err := sites.NewLoader(path).LoadProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "cnet", profiles[0].Name)
	assert.Equal(t, []string{"cnet.com"}, profiles[0].Domains)
	require.Len(t, profiles[0].Rules, 2)
	assert.Equal(t, `.c-globalUpdatedDate time[datetime]`, profiles[0].Rules[0].Selector)

	assert.Equal(t, "zdnet", profiles[1].Name)
	assert.Len(t, profiles[1].Domains, 2)
}

func TestLoadProfiles_SkipsInvalidEntries(t *testing.T) {
	path := writeProfilesFile(t, `
profiles:
  - name: ""
    domains:
      - nameless.com
    rules:
      - selector: "time"
  - name: nodomains
    rules:
      - selector: "time"
  - name: norules
    domains:
      - norules.com
  - name: good
    domains:
      - good.com
    rules:
      - selector: "time[datetime]"
`)

	profiles, err := sites.NewLoader(path).LoadProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1, "only the complete entry should survive")
	assert.Equal(t, "good", profiles[0].Name)
}

func TestLoadProfiles_EmptyFile(t *testing.T) {
	path := writeProfilesFile(t, "profiles: []\n")

	_, err := sites.NewLoader(path).LoadProfiles()
	require.Error(t, err)
	assert.ErrorIs(t, err, sites.ErrNoProfiles)
}

func TestLoadProfiles_AllEntriesInvalid(t *testing.T) {
	path := writeProfilesFile(t, `
profiles:
  - name: broken
`)

	_, err := sites.NewLoader(path).LoadProfiles()
	assert.ErrorIs(t, err, sites.ErrNoProfiles)
}

func TestLoadProfiles_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")

	_, err := sites.NewLoader(path).LoadProfiles()
	require.Error(t, err)
}

func TestLoadProfiles_MalformedYAML(t *testing.T) {
	path := writeProfilesFile(t, "profiles: [broken\n")

	_, err := sites.NewLoader(path).LoadProfiles()
	require.Error(t, err)
}

func TestLoadedProfiles_ExtendRegistry(t *testing.T) {
	path := writeProfilesFile(t, `
profiles:
  - name: techradar
    domains:
      - techradar.com
    rules:
      - selector: ".news-article time[datetime]"
`)

	profiles, err := sites.NewLoader(path).LoadProfiles()
	require.NoError(t, err)

	registry := sites.DefaultRegistry()
	registry.Register(profiles...)

	require.NotNil(t, registry.Lookup("techradar.com"))
	require.NotNil(t, registry.Lookup("cnet.com"), "built-ins remain after registering a pack")
}
