// pkg/provision/export_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: CommandRecorder, temp dirs
// PURPOSE: Test plan document construction and rendering

package provision_test

import (
	"testing"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/provision"
	"github.com/arthur-debert/archup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestDoc(t *testing.T) provision.Doc {
	t.Helper()
	env := testEnv(t, testutil.NewCommandRecorder(), "/bin/bash")
	m := provision.Default()
	return provision.BuildDoc(m, provision.Plan(env, m))
}

func TestBuildDoc(t *testing.T) {
	doc := buildTestDoc(t)
	m := provision.Default()

	assert.Equal(t, m.OfficialPackages, doc.OfficialPackages)
	assert.Equal(t, m.AURPackages, doc.AURPackages)
	assert.Equal(t, m.DotfilesRemote, doc.DotfilesRemote)
	assert.Equal(t, m.TargetShell, doc.TargetShell)
	require.Len(t, doc.Steps, 10)

	guarded := make(map[string]bool)
	for _, s := range doc.Steps {
		guarded[s.Name] = s.Guarded
	}
	assert.True(t, guarded["aur-helper"])
	assert.True(t, guarded["dotfiles-clone"])
	assert.True(t, guarded["login-shell"])
	assert.False(t, guarded["network-setup"])
	assert.False(t, guarded["system-update"])
}

func TestRenderText(t *testing.T) {
	out, err := buildTestDoc(t).Render(provision.FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "Provisioning plan (10 steps)")
	assert.Contains(t, out, "network-setup")
	assert.Contains(t, out, "login-shell")
	assert.Contains(t, out, "Login shell: zsh")
	assert.Contains(t, out, "Git identity: Arthur Debert")
}

func TestRenderEmptyFormatDefaultsToText(t *testing.T) {
	out, err := buildTestDoc(t).Render("")
	require.NoError(t, err)
	assert.Contains(t, out, "Provisioning plan")
}

func TestRenderYAML(t *testing.T) {
	out, err := buildTestDoc(t).Render(provision.FormatYAML)
	require.NoError(t, err)

	assert.Contains(t, out, "target_shell: zsh")
	assert.Contains(t, out, "official_packages:")
	assert.Contains(t, out, "name: network-setup")
}

func TestRenderTOML(t *testing.T) {
	out, err := buildTestDoc(t).Render(provision.FormatTOML)
	require.NoError(t, err)

	assert.Contains(t, out, "target_shell = ")
	assert.Contains(t, out, "[[steps]]")
	assert.Contains(t, out, "official_packages = ")
}

func TestRenderXML(t *testing.T) {
	out, err := buildTestDoc(t).Render(provision.FormatXML)
	require.NoError(t, err)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<target_shell>zsh</target_shell>")
	assert.Contains(t, out, `<step name="network-setup">`)
	assert.Contains(t, out, `guarded="true"`)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := buildTestDoc(t).Render("json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
