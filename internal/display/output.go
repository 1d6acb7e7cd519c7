// Package display renders reconciliation results: the shell assignments
// consumed by the build script, the continuation-line layout for pasting
// into a configure call, and the log summary.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
	"github.com/backmassage/codecflags/internal/config"
)

// Variable names of the shell assignments, in output order.
const (
	VarDisabledDecoders = "DISABLED_DECODERS_FLAGS"
	VarEnabledDecoders  = "ENABLED_DECODERS_FLAGS"
	VarDisabledEncoders = "DISABLED_ENCODERS_FLAGS"
)

// missingLimit caps how many missing allow-list entries the summary names.
const missingLimit = 20

// Write renders res in the given format. The output is built in memory
// first so w never receives a partial result.
func Write(w io.Writer, format config.OutputFormat, res codec.Result) error {
	var b strings.Builder
	switch format {
	case config.FormatShell:
		writeShell(&b, res)
	case config.FormatLines:
		writeLines(&b, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeShell writes one NAME="flags" line per flag set, suitable for eval.
func writeShell(b *strings.Builder, res codec.Result) {
	for _, a := range []struct {
		name  string
		flags codec.FlagSet
	}{
		{VarDisabledDecoders, res.DisabledDecoders},
		{VarEnabledDecoders, res.EnabledDecoders},
		{VarDisabledEncoders, res.DisabledEncoders},
	} {
		fmt.Fprintf(b, "%s=\"%s\"\n", a.name, a.flags)
	}
}

// writeLines writes every flag on its own continuation line, enabled
// decoders first.
func writeLines(b *strings.Builder, res codec.Result) {
	for _, set := range []codec.FlagSet{res.EnabledDecoders, res.DisabledDecoders, res.DisabledEncoders} {
		for _, f := range set {
			fmt.Fprintf(b, "    %s \\\n", f)
		}
	}
}

// Summary logs what a run produced and warns about allow-listed decoders
// the build does not have.
func Summary(ctx context.Context, res codec.Result) {
	logger.Infof(ctx, "%s available: %d enabled, %d disabled",
		FormatCount(res.AvailableDecoders, codec.Decoder),
		len(res.EnabledDecoders), len(res.DisabledDecoders))
	logger.Infof(ctx, "%s available: all disabled",
		FormatCount(res.AvailableEncoders, codec.Encoder))
	if len(res.Missing) > 0 {
		logger.Warnf(ctx, "allow-listed but unknown to the build (%s): %s",
			FormatCount(len(res.Missing), codec.Decoder),
			FormatNames(res.Missing, missingLimit))
	}
}
