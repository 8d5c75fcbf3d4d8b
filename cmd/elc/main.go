// Command elc downloads AEC House of Representatives results, decodes them
// into typed records and caches them per election year.
//
// Usage:
//
//	elc [load]     fetch or load from cache every configured election
//	elc serve      load, then serve the results as a JSON API
//	elc export     load, then write an XLSX workbook
//	elc purge      clear the cache
//	elc version    print build information
package main

import (
	"os"

	_ "github.com/JonMunkholm/elc/internal/core/kinds" // Register all record kinds
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
