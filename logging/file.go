package logging

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileOptions configures a rotating FileWriter.
type FileOptions struct {
	Dir       string
	Filename  string
	MaxSizeMB int
	MaxFiles  int
	// MaxAge forces a rotation once the current file is older than this.
	MaxAge time.Duration
}

// FileWriter writes logs to size- and age-rotated files, gzipping rotated output.
type FileWriter struct {
	mu           sync.Mutex
	opts         FileOptions
	maxSize      int64
	currentFile  *os.File
	currentSize  int64
	lastRotation time.Time
	background   sync.WaitGroup
	now          func() time.Time
}

// NewFileWriter creates a new file writer with rotation.
func NewFileWriter(opts FileOptions) (*FileWriter, error) {
	if strings.TrimSpace(opts.Filename) == "" {
		opts.Filename = "convertx.log"
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = 7
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 24 * time.Hour
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	fw := &FileWriter{
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * 1024 * 1024,
		now:     time.Now,
	}
	fw.lastRotation = fw.now()
	if err := fw.openFile(); err != nil {
		return nil, err
	}
	return fw, nil
}

// Path returns the path of the active log file.
func (fw *FileWriter) Path() string {
	return filepath.Join(fw.opts.Dir, fw.opts.Filename)
}

func (fw *FileWriter) openFile() error {
	f, err := os.OpenFile(fw.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	fw.currentFile = f
	fw.currentSize = info.Size()
	return nil
}

func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.currentFile == nil {
		return 0, os.ErrClosed
	}
	if fw.shouldRotate(int64(len(p))) {
		if err := fw.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := fw.currentFile.Write(p)
	fw.currentSize += int64(n)
	return n, err
}

// Sync flushes the active file.
func (fw *FileWriter) Sync() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.currentFile == nil {
		return nil
	}
	return fw.currentFile.Sync()
}

func (fw *FileWriter) shouldRotate(writeSize int64) bool {
	if fw.currentSize > 0 && fw.currentSize+writeSize > fw.maxSize {
		return true
	}
	return fw.now().Sub(fw.lastRotation) > fw.opts.MaxAge
}

func (fw *FileWriter) rotate() error {
	if err := fw.currentFile.Close(); err != nil {
		return fmt.Errorf("close current file: %w", err)
	}
	fw.currentFile = nil

	rotated := fmt.Sprintf("%s.%s", fw.Path(), fw.now().Format("20060102-150405.000"))
	if err := os.Rename(fw.Path(), rotated); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("rename log file: %w", err)
	}

	fw.background.Add(1)
	go func() {
		defer fw.background.Done()
		compressFile(rotated)
		fw.cleanup()
	}()

	if err := fw.openFile(); err != nil {
		return err
	}
	fw.lastRotation = fw.now()
	return nil
}

func compressFile(path string) {
	in, err := os.Open(path)
	if err != nil {
		return
	}
	defer in.Close()

	gzPath := path + ".gz"
	out, err := os.Create(gzPath)
	if err != nil {
		return
	}
	gz := gzip.NewWriter(out)
	_, copyErr := io.Copy(gz, in)
	closeErr := gz.Close()
	out.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(gzPath)
		return
	}
	os.Remove(path)
}

func (fw *FileWriter) cleanup() {
	matches, err := filepath.Glob(fw.Path() + ".*")
	if err != nil || len(matches) <= fw.opts.MaxFiles {
		return
	}
	// Rotated names embed a sortable timestamp.
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-fw.opts.MaxFiles] {
		os.Remove(path)
	}
}

// Close waits for pending compression and closes the active file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	f := fw.currentFile
	fw.currentFile = nil
	fw.mu.Unlock()

	fw.background.Wait()
	if f != nil {
		return f.Close()
	}
	return nil
}

// ReadRecent reads the most recent n log entries from a log file. Malformed
// lines are skipped.
func ReadRecent(logPath string, n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	f, err := os.Open(logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ring))
	for _, line := range ring {
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
