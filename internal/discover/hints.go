package discover

import "regexp"

// Pre-compiled regexes for classifying configure stderr. Checked in order
// by [Hint]; the first match wins.
var (
	reUnknownOption = regexp.MustCompile(
		`(?i)Unknown option "?--list-|unrecognized option`)

	reScriptMissing = regexp.MustCompile(
		`(?i)can't open|No such file or directory|not found`)

	rePermission = regexp.MustCompile(
		`(?i)Permission denied`)
)

// Hint suggests a fix for a failed configure run based on its stderr, or
// returns "" when nothing matches.
func Hint(stderr string) string {
	switch {
	case reUnknownOption.MatchString(stderr):
		return "this configure cannot list codecs; try --source=header with the generated config.h"
	case reScriptMissing.MatchString(stderr):
		return "check --ffmpeg-dir and --configure point at the ffmpeg configure script"
	case rePermission.MatchString(stderr):
		return "the configure script or ffmpeg directory is not readable"
	default:
		return ""
	}
}
