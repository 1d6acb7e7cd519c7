package discover

import (
	"context"
	"fmt"

	"github.com/backmassage/codecflags/internal/codec"
	"github.com/backmassage/codecflags/internal/config"
)

// Source yields the codecs a build knows about.
type Source interface {
	Codecs(ctx context.Context, class codec.Class) (*codec.Set, error)
	String() string
}

// NewSource returns the source selected by cfg.Source.
func NewSource(cfg *config.Config) (Source, error) {
	switch cfg.Source {
	case config.SourceConfigure:
		return &ConfigureSource{cfg: cfg}, nil
	case config.SourceHeader:
		return &HeaderSource{Path: cfg.HeaderPath}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// ConfigureSource asks the build's configure script for each class.
type ConfigureSource struct {
	cfg *config.Config
}

func (s *ConfigureSource) Codecs(ctx context.Context, class codec.Class) (*codec.Set, error) {
	return ListCodecs(ctx, s.cfg, class)
}

func (s *ConfigureSource) String() string {
	return "configure in " + s.cfg.FFmpegDir()
}

// HeaderSource scans a config header once and serves both classes from
// that scan.
type HeaderSource struct {
	Path string

	scanned *HeaderCodecs
}

func (s *HeaderSource) Codecs(ctx context.Context, class codec.Class) (*codec.Set, error) {
	if s.scanned == nil {
		h, err := ScanHeaderFile(ctx, s.Path)
		if err != nil {
			return nil, err
		}
		s.scanned = h
	}
	set := s.scanned.Get(class)
	if set.Len() == 0 {
		return nil, fmt.Errorf("%s: no %s: %w", s.Path, class.Plural(), ErrEmptyListing)
	}
	return set, nil
}

func (s *HeaderSource) String() string {
	return "header " + s.Path
}

// Inputs is everything a reconciliation run needs.
type Inputs struct {
	Decoders *codec.Set
	Encoders *codec.Set
	Wanted   *codec.Set
}

// Acquire loads the allow-list and both codec listings. It stops at the
// first failure, so either every input is available or none is used.
func Acquire(ctx context.Context, cfg *config.Config, src Source) (*Inputs, error) {
	wanted, err := LoadAllowList(ctx, cfg.AllowListPath)
	if err != nil {
		return nil, err
	}
	decoders, err := src.Codecs(ctx, codec.Decoder)
	if err != nil {
		return nil, fmt.Errorf("list decoders: %w", err)
	}
	encoders, err := src.Codecs(ctx, codec.Encoder)
	if err != nil {
		return nil, fmt.Errorf("list encoders: %w", err)
	}
	return &Inputs{Decoders: decoders, Encoders: encoders, Wanted: wanted}, nil
}
