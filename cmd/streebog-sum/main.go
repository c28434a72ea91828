// Command streebog-sum computes GOST R 34.11-2018 digests of files or
// standard input, in the style of the coreutils *sum family.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gost3411/streebog/gost3411"
)

var (
	bits    int
	reverse bool
	verbose bool
	logger  *zap.SugaredLogger
)

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	l, err := cfg.Build()
	if err != nil {
		// Falling back to a no-op logger keeps the CLI usable even if
		// zap's own config validation fails; logging is diagnostic only.
		l = zap.NewNop()
	}
	return l.Sugar()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streebog-sum [file...]",
		Short: "Compute GOST R 34.11-2018 (Streebog) message digests",
		Long: "streebog-sum computes 256-bit or 512-bit Streebog digests of one or more\n" +
			"files, or of standard input if no file is given.",
		RunE: run,
	}
	cmd.Flags().IntVar(&bits, "bits", gost3411.Size512, "digest size in bits (256 or 512)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "emit the digest in little-endian byte order instead of the standard's big-endian form")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-file timing at debug level")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger = newLogger(verbose)
	defer logger.Sync()

	if bits != gost3411.Size256 && bits != gost3411.Size512 {
		return fmt.Errorf("streebog-sum: --bits must be %d or %d, got %d", gost3411.Size256, gost3411.Size512, bits)
	}

	if len(args) == 0 {
		return sumReader(cmd.OutOrStdout(), cmd.InOrStdin(), "-")
	}

	var firstErr error
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			logger.Errorw("failed to open input", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		err = sumReader(cmd.OutOrStdout(), f, path)
		f.Close()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func sumReader(w io.Writer, r io.Reader, name string) error {
	start := time.Now()

	message, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("streebog-sum: reading %s: %w", name, err)
	}

	digest := gost3411.Hash(message, bits)
	if reverse {
		digest = reversedCopy(digest)
	}

	logger.Debugw("computed digest", "path", name, "bytes", len(message), "elapsed", time.Since(start))

	_, err = fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(digest), name)
	return err
}

func reversedCopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
