package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"carshare-settlement/internal/logger"
)

// Stdio is the path meaning stdin for input and stdout for output.
const Stdio = "-"

// ReadFile decodes the input document at path.
func ReadFile(path string) (*Input, error) {
	logger.FileCall("read", path)
	if path == Stdio {
		in, err := Decode(os.Stdin)
		logger.FileResult("read", path, 0, err)
		return in, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read input document: %w", err)
		logger.FileResult("read", path, 0, err)
		return nil, err
	}
	in, err := Decode(bytes.NewReader(data))
	logger.FileResult("read", path, int64(len(data)), err)
	return in, err
}

// WriteFile writes out to path through a temporary file renamed into
// place, so a failed run never leaves a partial document behind.
func WriteFile(path string, out *Output) error {
	logger.FileCall("write", path)

	var buf bytes.Buffer
	if err := Encode(&buf, out); err != nil {
		logger.FileResult("write", path, 0, err)
		return err
	}
	size := int64(buf.Len())

	if path == Stdio {
		_, err := buf.WriteTo(os.Stdout)
		logger.FileResult("write", path, size, err)
		return err
	}

	err := writeAtomic(path, buf.Bytes())
	logger.FileResult("write", path, size, err)
	return err
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to prepare output document: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output document into place: %w", err)
	}
	return nil
}
