package api

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/psykit/psyk/pkg/psyq"
	"github.com/psykit/psyk/pkg/symdb"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	index   SymbolIndex
	metrics *Metrics
}

// NewServer creates a new API server. index may be nil when no symbol index
// has been built; symbol lookups then answer 503.
func NewServer(config ServerConfig, index SymbolIndex, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		index:   index,
		metrics: metrics,
	}
}

func (s *Server) recordArchiveRead(success bool) {
	if s.metrics != nil {
		s.metrics.RecordArchiveRead(success)
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleListLibraries lists the archives in the configured library directory
func (s *Server) handleListLibraries(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.config.LibraryDir)
	if err != nil {
		sendError(w, "Failed to read library directory", http.StatusInternalServerError)
		return
	}

	libraries := []LibraryInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".lib") {
			continue
		}
		_, modules, err := psyq.ReadLibOpaque(filepath.Join(s.config.LibraryDir, entry.Name()))
		if err != nil {
			// skip unreadable or foreign files rather than failing the listing
			s.recordArchiveRead(false)
			continue
		}
		s.recordArchiveRead(true)
		libraries = append(libraries, LibraryInfo{
			Name:    entry.Name(),
			Modules: len(modules),
		})
	}
	sort.Slice(libraries, func(i, j int) bool { return libraries[i].Name < libraries[j].Name })

	sendSuccess(w, libraries)
}

// handleGetLibrary lists the modules of one archive
func (s *Server) handleGetLibrary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !safeName(name) {
		sendError(w, "Invalid library name", http.StatusBadRequest)
		return
	}

	lib, err := psyq.ReadLib(filepath.Join(s.config.LibraryDir, name))
	if err != nil {
		s.recordArchiveRead(false)
		if os.IsNotExist(err) {
			sendError(w, "Library not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to read library", http.StatusInternalServerError)
		return
	}
	s.recordArchiveRead(true)

	modules := make([]ModuleInfo, 0, len(lib.Modules))
	for i := range lib.Modules {
		modules = append(modules, moduleInfo(&lib.Modules[i]))
	}
	sendSuccess(w, modules)
}

// handleGetModule returns one module's metadata and section listing
func (s *Server) handleGetModule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	moduleName := chi.URLParam(r, "module")
	if !safeName(name) {
		sendError(w, "Invalid library name", http.StatusBadRequest)
		return
	}

	lib, err := psyq.ReadLib(filepath.Join(s.config.LibraryDir, name))
	if err != nil {
		s.recordArchiveRead(false)
		if os.IsNotExist(err) {
			sendError(w, "Library not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to read library", http.StatusInternalServerError)
		return
	}
	s.recordArchiveRead(true)

	m, ok := lib.Module(moduleName)
	if !ok {
		sendError(w, "Module not found", http.StatusNotFound)
		return
	}

	sendSuccess(w, ModuleListing{
		ModuleInfo: moduleInfo(m),
		Listing:    psyq.RenderObj(m.Obj, psyq.RenderOptions{}),
	})
}

// handleLookupSymbol answers "which module defines X" from the symbol index
func (s *Server) handleLookupSymbol(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		sendError(w, "Symbol index not configured", http.StatusServiceUnavailable)
		return
	}

	symbol := chi.URLParam(r, "symbol")
	locs, err := s.index.Lookup(symbol)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordSymbolLookup(false)
		}
		sendError(w, "Symbol lookup failed", http.StatusInternalServerError)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSymbolLookup(true)
	}
	if locs == nil {
		locs = []symdb.Location{}
	}
	sendSuccess(w, locs)
}

func moduleInfo(m *psyq.Module) ModuleInfo {
	exports := []string{}
	for _, e := range m.Exports() {
		exports = append(exports, e.Name())
	}
	return ModuleInfo{
		Name:    m.Name(),
		Created: m.Metadata.Created.String(),
		Size:    m.Metadata.Size,
		Exports: exports,
	}
}
