package main

import (
	"sync"

	"go.lsp.dev/uri"
)

type documentStore struct {
	mu   sync.Mutex
	docs map[uri.URI]string
}

func newDocumentStore() *documentStore {
	return &documentStore{
		docs: make(map[uri.URI]string),
	}
}

func (ds *documentStore) set(u uri.URI, text string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[u] = text
}

func (ds *documentStore) get(u uri.URI) (string, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	text, ok := ds.docs[u]
	return text, ok
}

func (ds *documentStore) del(u uri.URI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, u)
}
