package provision

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Doc.Render
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatXML  = "xml"
)

// StepDoc describes one step in an exported plan
type StepDoc struct {
	Name    string `yaml:"name" toml:"name"`
	Summary string `yaml:"summary" toml:"summary"`

	// Guarded marks steps with an idempotency check
	Guarded bool `yaml:"guarded" toml:"guarded"`
}

// Doc is the serializable description of a run: the manifest values
// and the step sequence that applies them. Scalar fields come first
// so the TOML rendering stays valid.
type Doc struct {
	DotfilesRemote   string    `yaml:"dotfiles_remote" toml:"dotfiles_remote"`
	GitEmail         string    `yaml:"git_email" toml:"git_email"`
	GitName          string    `yaml:"git_name" toml:"git_name"`
	TargetShell      string    `yaml:"target_shell" toml:"target_shell"`
	OfficialPackages []string  `yaml:"official_packages" toml:"official_packages"`
	AURPackages      []string  `yaml:"aur_packages" toml:"aur_packages"`
	Steps            []StepDoc `yaml:"steps" toml:"steps"`
}

// BuildDoc flattens a manifest and its step sequence for export
func BuildDoc(m Manifest, steps []Step) Doc {
	stepDocs := make([]StepDoc, len(steps))
	for i, s := range steps {
		stepDocs[i] = StepDoc{
			Name:    s.Name,
			Summary: s.Summary,
			Guarded: s.Check != nil,
		}
	}
	return Doc{
		DotfilesRemote:   m.DotfilesRemote,
		GitEmail:         m.GitEmail,
		GitName:          m.GitName,
		TargetShell:      m.TargetShell,
		OfficialPackages: m.OfficialPackages,
		AURPackages:      m.AURPackages,
		Steps:            stepDocs,
	}
}

// Render serializes the doc in the requested format
func (d Doc) Render(format string) (string, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(d)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "rendering plan as yaml failed")
		}
		return string(out), nil

	case FormatTOML:
		out, err := toml.Marshal(d)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "rendering plan as toml failed")
		}
		return string(out), nil

	case FormatXML:
		return d.renderXML()

	case FormatText, "":
		return d.renderText(), nil

	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown format: %s (want text, yaml, toml, or xml)", format)
	}
}

func (d Doc) renderXML() (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	plan := doc.CreateElement("plan")
	plan.CreateElement("dotfiles_remote").SetText(d.DotfilesRemote)
	plan.CreateElement("git_email").SetText(d.GitEmail)
	plan.CreateElement("git_name").SetText(d.GitName)
	plan.CreateElement("target_shell").SetText(d.TargetShell)

	official := plan.CreateElement("official_packages")
	for _, pkg := range d.OfficialPackages {
		official.CreateElement("package").SetText(pkg)
	}
	aur := plan.CreateElement("aur_packages")
	for _, pkg := range d.AURPackages {
		aur.CreateElement("package").SetText(pkg)
	}

	steps := plan.CreateElement("steps")
	for _, s := range d.Steps {
		step := steps.CreateElement("step")
		step.CreateAttr("name", s.Name)
		if s.Guarded {
			step.CreateAttr("guarded", "true")
		}
		step.SetText(s.Summary)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "rendering plan as xml failed")
	}
	return out, nil
}

func (d Doc) renderText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Provisioning plan (%d steps)\n\n", len(d.Steps))
	for i, s := range d.Steps {
		marker := " "
		if s.Guarded {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %2d. %s %-18s %s\n", i+1, marker, s.Name, s.Summary)
	}
	b.WriteString("\n  * skipped when already done\n\n")

	fmt.Fprintf(&b, "Official packages (%d): %s\n", len(d.OfficialPackages), strings.Join(d.OfficialPackages, " "))
	fmt.Fprintf(&b, "AUR packages (%d): %s\n", len(d.AURPackages), strings.Join(d.AURPackages, " "))
	fmt.Fprintf(&b, "Dotfiles: %s\n", d.DotfilesRemote)
	fmt.Fprintf(&b, "Git identity: %s <%s>\n", d.GitName, d.GitEmail)
	fmt.Fprintf(&b, "Login shell: %s\n", d.TargetShell)

	return b.String()
}
