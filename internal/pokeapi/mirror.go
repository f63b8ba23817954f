package pokeapi

import (
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
)

// NewMirrorHandler serves PokeAPI-shaped fixtures from fsys so the API can
// run offline. Layout:
//
//	pokemon/<name>.json
//	pokemon-species/<name>.json
//
// GET /pokemon-species without a name lists every species file.
func NewMirrorHandler(fsys fs.FS) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pokemon/{name}", func(w http.ResponseWriter, r *http.Request) {
		serveFixture(w, fsys, "pokemon", r.PathValue("name"))
	})
	mux.HandleFunc("GET /pokemon-species/{name}", func(w http.ResponseWriter, r *http.Request) {
		serveFixture(w, fsys, "pokemon-species", r.PathValue("name"))
	})
	mux.HandleFunc("GET /pokemon-species", func(w http.ResponseWriter, r *http.Request) {
		serveListing(w, r, fsys)
	})
	return mux
}

func serveFixture(w http.ResponseWriter, fsys fs.FS, dir, name string) {
	name = strings.ToLower(name)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	b, err := fs.ReadFile(fsys, path.Join(dir, name+".json"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	// validate JSON so a bad fixture doesn't silently break
	if !json.Valid(b) {
		http.Error(w, dir+"/"+name+".json invalid JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func serveListing(w http.ResponseWriter, r *http.Request, fsys fs.FS) {
	entries, err := fs.ReadDir(fsys, "pokemon-species")
	if err != nil {
		entries = nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset = max(0, min(offset, len(names)))
	end := min(len(names), offset+limit)

	page := listPayload{Count: len(names), Results: make([]namedResource, 0, end-offset)}
	for _, n := range names[offset:end] {
		page.Results = append(page.Results, namedResource{Name: n, URL: "/pokemon-species/" + n + "/"})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		log.Printf("[mirror] encode listing: %v", err)
	}
}
