//go:build cgoxz && noxz
// +build cgoxz,noxz

package autodec

// Asking for the cgo xz decoder while compiling xz support out makes no
// sense, so fail the build with a readable message.
var _ = build_tags_cgoxz_and_noxz_cannot_be_enabled_at_the_same_time
