// Package discover acquires the inputs of a reconciliation run: the codecs
// an ffmpeg build knows about and the decoder allow-list.
//
// Available codecs come either from the build's own configure script
// ("configure --list-decoders") or from a generated config.h. Every fatal
// condition is reported here, before any flag is produced:
//
//   - [ErrMissingArtifact] (wrapped in [*ArtifactError]) when a directory,
//     header or allow-list file is absent.
//   - [*DiscoveryError] when configure cannot start or exits non-zero; its
//     stderr is preserved.
//
// Header lines that look like codec definitions but yield no name are
// skipped.
package discover
