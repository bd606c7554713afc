package lexicon

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// ErrSnapshot is wrapped by every snapshot read or write failure.
var ErrSnapshot = errors.New("lexicon snapshot")

// Snapshot layout: magic, big-endian format version, zstd-compressed gob of domain.Lexicon.
const (
	snapshotMagic   = "WNCHATLX"
	SnapshotVersion = uint16(1)
)

// Save writes lex to path atomically: the snapshot is written to a temp file
// in the same directory and renamed into place.
func Save(lex *domain.Lexicon, path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrSnapshot, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, lex); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrSnapshot, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrSnapshot, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrSnapshot, err)
	}
	return nil
}

// Encode writes the snapshot header and compressed body to w.
func Encode(w io.Writer, lex *domain.Lexicon) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(snapshotMagic); err != nil {
		return fmt.Errorf("%w: write header: %w", ErrSnapshot, err)
	}
	if err := binary.Write(bw, binary.BigEndian, SnapshotVersion); err != nil {
		return fmt.Errorf("%w: write header: %w", ErrSnapshot, err)
	}

	zw, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("%w: zstd writer: %w", ErrSnapshot, err)
	}
	if err := gob.NewEncoder(zw).Encode(lex); err != nil {
		zw.Close()
		return fmt.Errorf("%w: gob encode: %w", ErrSnapshot, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: zstd close: %w", ErrSnapshot, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrSnapshot, err)
	}
	return nil
}

// Restore reads a snapshot written by Save.
func Restore(path string) (*domain.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	defer f.Close()

	lex, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// Decode reads a snapshot from r and rebuilds the lexicon.
func Decode(r io.Reader) (*domain.Lexicon, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrSnapshot, err)
	}
	if !bytes.Equal(magic, []byte(snapshotMagic)) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrSnapshot, magic)
	}
	var version uint16
	if err := binary.Read(br, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrSnapshot, err)
	}
	if version != SnapshotVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", ErrSnapshot, version, SnapshotVersion)
	}

	zr, err := zstd.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd reader: %w", ErrSnapshot, err)
	}
	defer zr.Close()

	lex := domain.NewLexicon("")
	if err := gob.NewDecoder(zr).Decode(lex); err != nil {
		return nil, fmt.Errorf("%w: gob decode: %w", ErrSnapshot, err)
	}
	if err := Validate(lex); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	return lex, nil
}
