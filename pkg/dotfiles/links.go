package dotfiles

// LinkMode selects how a LinkSpec reaches its target
type LinkMode string

const (
	// ModeLink force-creates a symlink, replacing whatever occupies
	// the target
	ModeLink LinkMode = "link"

	// ModeCopyIfExists copies the source only when it exists; an
	// absent source skips the entry silently
	ModeCopyIfExists LinkMode = "copy-if-exists"

	// ModeLinkIfExists links the source only when it exists in the
	// dotfiles tree; an absent source skips the entry with a
	// diagnostic
	ModeLinkIfExists LinkMode = "link-if-exists"
)

// LinkSpec describes one configuration target. Both paths are absolute
// by the time the spec reaches the linker.
type LinkSpec struct {
	Source string
	Target string
	Mode   LinkMode
}
