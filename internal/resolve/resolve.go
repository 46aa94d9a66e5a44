// Package resolve implements the module resolver (spec.md §4.F): given an
// entry program and its directory, it recursively loads, parses, rewrites
// and flattens every `import`/`from-import` target into a single merged
// *ast.Program, preventing cycles with a resolve-once key set.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"snask/internal/ast"
	"snask/internal/builtins"
	"snask/internal/cachepath"
	"snask/internal/parser"
	"snask/internal/source"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// FileReader abstracts reading a module's source text, mirroring spec.md
// §6's `read_file(path) -> (string, error)` so an embedder can substitute
// an in-memory overlay the way the teacher's driver package substitutes a
// FileOverlay ahead of its diagnose-workspace machinery.
type FileReader interface {
	ReadFile(path string) (string, error)
}

type osFileReader struct{}

func (osFileReader) ReadFile(path string) (string, error) {
	// #nosec G304 -- path is produced by the resolver's own candidate search
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Options configures a Resolver.
type Options struct {
	// Reader loads module source text. Defaults to reading from disk.
	Reader FileReader
	// Native is the closed set of function names the native-alias rewrite
	// targets. Defaults to internal/builtins.NativeNames().
	Native []string
	// PackagesDir overrides the global package search directory. Defaults
	// to PackagesDir().
	PackagesDir string
}

// Resolver holds the resolve-once bookkeeping and file cache for one
// compile.
type Resolver struct {
	reader      FileReader
	native      map[string]bool
	packagesDir string

	mu       sync.Mutex
	resolved map[string]bool

	cacheMu sync.Mutex
	cache   map[string]cacheEntry
	sf      singleflight.Group
}

type cacheEntry struct {
	content string
	err     error
}

// New builds a Resolver from opts, filling in defaults for any zero field.
func New(opts Options) (*Resolver, error) {
	reader := opts.Reader
	if reader == nil {
		reader = osFileReader{}
	}
	native := opts.Native
	if native == nil {
		native = builtins.MustLoad().NativeNames()
	}
	pkgDir := opts.PackagesDir
	if pkgDir == "" {
		dir, err := PackagesDir()
		if err != nil {
			return nil, err
		}
		pkgDir = dir
	}
	nativeSet := make(map[string]bool, len(native))
	for _, n := range native {
		nativeSet[n] = true
	}
	return &Resolver{
		reader:      reader,
		native:      nativeSet,
		packagesDir: pkgDir,
		resolved:    make(map[string]bool),
		cache:       make(map[string]cacheEntry),
	}, nil
}

// PackagesDir resolves the global module search directory: the
// SNASK_PACKAGES_DIR override if set, else <user-config-dir>/snask/packages
// (grounded on the teacher's os.UserConfigDir/XDG-style resolution in
// driver.OpenDiskCache).
func PackagesDir() (string, error) {
	return cachepath.EnvOrDir("SNASK_PACKAGES_DIR", "packages")
}

// Resolve runs the default resolver (disk-backed, builtins-driven native
// set) over program, matching the root package's ResolveImports contract.
func Resolve(program *ast.Program, currentDir string) (*ast.Program, error) {
	r, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return r.Resolve(program, currentDir)
}

// Resolve walks program's entry statements, recursively resolving every
// import, and returns a single flattened, merged *ast.Program.
func (r *Resolver) Resolve(program *ast.Program, currentDir string) (*ast.Program, error) {
	merged := ast.NewProgram(program.File, uint(len(program.Body)))
	body, err := r.resolveBody(merged, program, program.Body, currentDir)
	if err != nil {
		return nil, err
	}
	merged.Body = body
	return merged, nil
}

func (r *Resolver) resolveBody(merged, src *ast.Program, ids []ast.StmtID, dir string) ([]ast.StmtID, error) {
	r.prefetchImports(src, ids, dir)

	out := make([]ast.StmtID, 0, len(ids))
	for _, id := range ids {
		st := src.Stmts.Get(id)
		switch st.Kind {
		case ast.StmtImport:
			data, _ := src.Stmts.Import(id)
			sub, err := r.resolveImportStmt(merged, data.Path, dir)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case ast.StmtFromImport:
			data, _ := src.Stmts.FromImport(id)
			sub, err := r.resolveFromImportStmt(merged, *data, dir)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		default:
			out = append(out, copyStmt(merged, src, id))
		}
	}
	return out, nil
}

func (r *Resolver) resolveImportStmt(merged *ast.Program, path, dir string) ([]ast.StmtID, error) {
	key := path
	if !r.markResolved(key) {
		return nil, nil
	}

	content, resolvedPath, err := r.loadImport(dir, path)
	if err != nil {
		return nil, err
	}
	return r.parseRewriteAndRecurse(merged, content, resolvedPath)
}

func (r *Resolver) resolveFromImportStmt(merged *ast.Program, data ast.FromImportData, importingDir string) ([]ast.StmtID, error) {
	dir := importingDir
	if !data.IsCurrentDir {
		dir = filepath.Join(append([]string{importingDir}, data.Segments...)...)
	}
	modPath := withSnaskExt(filepath.Join(dir, data.Module))

	abs, err := filepath.Abs(modPath)
	if err != nil {
		abs = filepath.Clean(modPath)
	}
	key := "from:" + abs
	if !r.markResolved(key) {
		return nil, nil
	}

	content, err := r.readFile(modPath)
	if err != nil {
		return nil, fmt.Errorf("module %q not found at %q", data.Module, dir)
	}
	return r.parseRewriteAndRecurse(merged, content, modPath)
}

func (r *Resolver) parseRewriteAndRecurse(merged *ast.Program, content, resolvedPath string) ([]ast.StmtID, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(resolvedPath, []byte(content))
	file := fs.Get(fileID)

	modProgram, ok := parser.ParseProgram(file, parser.Options{})
	if !ok {
		return nil, fmt.Errorf("module %q: parse error", resolvedPath)
	}

	stem := moduleStem(resolvedPath)
	r.applyRewrites(modProgram, stem)

	return r.resolveBody(merged, modProgram, modProgram.Body, filepath.Dir(resolvedPath))
}

// markResolved reports whether key had not yet been seen, marking it seen
// either way. Duplicate imports are silently dropped (spec.md §4.F's
// "resolve once per compile" rule).
func (r *Resolver) markResolved(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved[key] {
		return false
	}
	r.resolved[key] = true
	return true
}

func (r *Resolver) loadImport(dir, path string) (content, resolvedPath string, err error) {
	local := withSnaskExt(filepath.Join(dir, path))
	if c, err := r.readFile(local); err == nil {
		return c, local, nil
	}
	global := withSnaskExt(filepath.Join(r.packagesDir, path))
	if c, err := r.readFile(global); err == nil {
		return c, global, nil
	}
	return "", "", fmt.Errorf("Module '%s' not found in '%s' nor in %s", path, dir, r.packagesDir)
}

func withSnaskExt(path string) string {
	if strings.HasSuffix(path, ".snask") {
		return path
	}
	return path + ".snask"
}

func moduleStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readFile serves content from the per-compile cache, deduping concurrent
// requests for the same path through a singleflight.Group (sibling
// imports' files are read concurrently by prefetchImports; parsing and
// resolution stay strictly sequential).
func (r *Resolver) readFile(path string) (string, error) {
	r.cacheMu.Lock()
	if e, ok := r.cache[path]; ok {
		r.cacheMu.Unlock()
		return e.content, e.err
	}
	r.cacheMu.Unlock()

	v, err, _ := r.sf.Do(path, func() (any, error) {
		return r.reader.ReadFile(path)
	})
	content, _ := v.(string)

	r.cacheMu.Lock()
	r.cache[path] = cacheEntry{content: content, err: err}
	r.cacheMu.Unlock()
	return content, err
}

// prefetchImports warms the file cache for every import/from-import
// candidate path at this level concurrently, so the sequential resolution
// loop below mostly hits cache. Read failures are swallowed here but stay
// cached; the sequential pass gets the cached error back and reports it.
func (r *Resolver) prefetchImports(src *ast.Program, ids []ast.StmtID, dir string) {
	var candidates []string
	for _, id := range ids {
		st := src.Stmts.Get(id)
		switch st.Kind {
		case ast.StmtImport:
			data, _ := src.Stmts.Import(id)
			candidates = append(candidates,
				withSnaskExt(filepath.Join(dir, data.Path)),
				withSnaskExt(filepath.Join(r.packagesDir, data.Path)),
			)
		case ast.StmtFromImport:
			data, _ := src.Stmts.FromImport(id)
			fromDir := dir
			if !data.IsCurrentDir {
				fromDir = filepath.Join(append([]string{dir}, data.Segments...)...)
			}
			candidates = append(candidates, withSnaskExt(filepath.Join(fromDir, data.Module)))
		}
	}
	if len(candidates) == 0 {
		return
	}

	var g errgroup.Group
	for _, c := range candidates {
		c := c
		g.Go(func() error {
			_, _ = r.readFile(c)
			return nil
		})
	}
	_ = g.Wait()
}
