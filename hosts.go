package ample

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Hosts maps a short database alias to the host (including any base path)
// serving it. Hosts without a scheme are reached over HTTPS; a scheme prefix
// is honoured, which test servers rely on.
type Hosts map[string]string

// Aliases of the well-known CERL databases.
const (
	AliasCT       = "ct"       // CERL Thesaurus
	AliasISTC     = "istc"     // Incunabula Short Title Catalogue
	AliasHoldInst = "holdinst" // Holding Institutions
	AliasMEI      = "mei"      // Material Evidence in Incunabula
)

// DefaultHosts returns the alias table for the well-known CERL databases.
func DefaultHosts() Hosts {
	return Hosts{
		AliasCT:       "data.cerl.org/thesaurus",
		AliasISTC:     "data.cerl.org/istc",
		AliasHoldInst: "data.cerl.org/holdinst",
		AliasMEI:      "data.cerl.org/mei",
	}
}

// Resolve maps an alias to its host. Unknown names are returned unchanged,
// so a literal host can be passed anywhere an alias is accepted.
func (h Hosts) Resolve(name string) string {
	if host, ok := h[name]; ok {
		return host
	}
	return name
}

// LoadHosts reads a YAML alias table ("alias: host" pairs) and merges it over
// the defaults, so custom tables extend or override the well-known databases.
func LoadHosts(r io.Reader) (Hosts, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read hosts table: %w", err)
	}

	var loaded map[string]string
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse hosts table: %w", err)
	}

	hosts := DefaultHosts()
	for alias, host := range loaded {
		hosts[alias] = host
	}
	return hosts, nil
}

// LoadHostsFile loads an alias table from a YAML file, merged over the defaults.
func LoadHostsFile(path string) (Hosts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hosts file: %w", err)
	}
	defer f.Close()

	return LoadHosts(f)
}
