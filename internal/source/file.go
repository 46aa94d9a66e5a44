package source

import (
	"crypto/sha256"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileID identifies a loaded source file within a FileSet.
type FileID uint32

// NoFileID is the zero value, never assigned to a real file.
const NoFileID FileID = 0

// FileFlags records how a file's bytes were normalized on load.
type FileFlags uint8

const (
	// FileVirtual marks content added from memory (test input, stdin, an
	// LSP overlay) rather than read from disk.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the normalized content of one source file plus its identity.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

// GetLine returns the 1-based line of text, without its terminator, or ""
// if the line does not exist. A file ending in a trailing newline has no
// further line after its last one, so the line past it is "" rather than
// a repeat of an earlier line.
func (f *File) GetLine(line uint32) string {
	if line == 0 {
		return ""
	}
	cur := uint32(1)
	start := 0
	for i, b := range f.Content {
		if b != '\n' {
			continue
		}
		if cur == line {
			return string(f.Content[start:i])
		}
		cur++
		start = i + 1
	}
	if cur == line {
		return string(f.Content[start:])
	}
	return ""
}

// FileSet owns a collection of loaded files and resolves relative paths
// against a base directory (used to render "auto"/"relative" paths).
type FileSet struct {
	files   []File
	index   map[string]FileID
	baseDir string
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates an empty FileSet rooted at baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   []File{{}}, // index 0 reserved for NoFileID
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the FileSet's base directory, falling back to the
// process's working directory when unset.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// Add registers already-normalized bytes under path and returns a fresh
// FileID, even if the same path was added before (the newest ID wins in
// the path index, letting an embedder reload an edited file).
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(err)
	}
	id := FileID(n)
	np := normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    np,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.index[np] = id
	return id
}

// Load reads path from disk, normalizes BOM/CRLF, and adds it.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller (module resolver / embedder)
	content, err := os.ReadFile(path)
	if err != nil {
		return NoFileID, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (tests, stdin, LSP overlays).
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileVirtual
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(name, content, flags)
}

// Get returns the file for id; id must be valid.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetByPath returns the most recently added file at path, if any.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fs.index[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return &fs.files[id], true
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeCRLF rewrites "\r\n" to "\n", leaving lone "\r" bytes alone
// (spec.md §6: "CR tolerated, CRLF treated as CR+LF").
func normalizeCRLF(content []byte) ([]byte, bool) {
	changed := false
	for _, b := range content {
		if b == '\r' {
			changed = true
			break
		}
	}
	if !changed {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}
