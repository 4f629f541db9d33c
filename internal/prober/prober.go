package prober

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"mime"
	"os"
	"path"
	"strings"

	"diffanalyzer/internal/classifier"
	"diffanalyzer/internal/models"

	"github.com/rs/zerolog"
)

// FileProber collects per-file metadata: size, modification time, content
// hash, text/binary classification and line count. The content hash is used
// purely for change detection, not for security.
type FileProber struct {
	classifier *classifier.FileClassifier
	sampleSize int
	logger     zerolog.Logger
}

// NewFileProber creates a new file prober. sampleSize bounds the number of
// leading bytes inspected for the binary sniff.
func NewFileProber(fileClassifier *classifier.FileClassifier, sampleSize int, logger zerolog.Logger) *FileProber {
	return &FileProber{
		classifier: fileClassifier,
		sampleSize: sampleSize,
		logger:     logger.With().Str("component", "FileProber").Logger(),
	}
}

// Probe builds a FileRecord for the file at absPath. The category is derived
// from relPath so that classification matches the scanner's view of the tree.
// Probe never fails: an unreadable file yields a record with an empty hash
// and zero size, which callers must treat as "could not probe".
func (fp *FileProber) Probe(absPath, relPath string) models.FileRecord {
	record := models.FileRecord{
		Category: fp.classifier.Classify(relPath),
	}

	info, err := os.Stat(absPath)
	if err != nil {
		fp.logger.Warn().Err(err).Str("path", absPath).Msg("Failed to stat file, returning empty record")
		return record
	}
	record.Size = info.Size()
	record.ModTime = info.ModTime()

	data, err := os.ReadFile(absPath)
	if err != nil {
		fp.logger.Warn().Err(err).Str("path", absPath).Msg("Failed to read file, hash unavailable")
		return record
	}

	digest := md5.Sum(data)
	record.Hash = hex.EncodeToString(digest[:])
	record.IsText = fp.isTextContent(relPath, data)
	if record.IsText {
		record.Lines = countLines(data)
	}

	return record
}

// IsTextFile reports whether the file at absPath holds text. Extension MIME
// lookup is consulted first; when inconclusive the leading bytes are sniffed
// for a NUL byte. Unreadable files are treated as binary.
func (fp *FileProber) IsTextFile(absPath string) bool {
	if mimeTypeIsText(absPath) {
		return true
	}

	f, err := os.Open(absPath)
	if err != nil {
		return false
	}
	defer f.Close()

	sample := make([]byte, fp.sampleSize)
	n, err := f.Read(sample)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}

	// An empty file counts as text.
	return !bytes.ContainsRune(sample[:n], 0x00)
}

// isTextContent applies the same rule as IsTextFile to already-read content.
func (fp *FileProber) isTextContent(relPath string, data []byte) bool {
	if mimeTypeIsText(relPath) {
		return true
	}

	sample := data
	if len(sample) > fp.sampleSize {
		sample = sample[:fp.sampleSize]
	}
	return !bytes.ContainsRune(sample, 0x00)
}

// mimeTypeIsText reports whether the extension maps to a text/* MIME type.
func mimeTypeIsText(filePath string) bool {
	mimeType := mime.TypeByExtension(path.Ext(filePath))
	return strings.HasPrefix(mimeType, "text/")
}

// countLines counts line terminators, treating a trailing unterminated line
// as one more line. Counting bytes keeps the decode lenient: invalid byte
// sequences never abort the count.
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
