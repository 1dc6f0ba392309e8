package api

import "github.com/psykit/psyk/pkg/symdb"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind       string
	Port       int
	LibraryDir string
}

// LibraryInfo is one row of the library listing
type LibraryInfo struct {
	Name    string `json:"name"`
	Modules int    `json:"modules"`
}

// ModuleInfo describes one archive member
type ModuleInfo struct {
	Name    string   `json:"name"`
	Created string   `json:"created"`
	Size    uint32   `json:"size"`
	Exports []string `json:"exports"`
}

// ModuleListing is a module plus its rendered section listing
type ModuleListing struct {
	ModuleInfo
	Listing string `json:"listing"`
}

// SymbolIndex is the part of the symbol database the API consumes
type SymbolIndex interface {
	Lookup(symbol string) ([]symdb.Location, error)
}
