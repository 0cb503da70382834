// Package themesource contains the theme sources a themectx provider can be
// mounted on: an in-memory source, a source persisted in the shade config
// file, and a decorator that records every change in the history store.
package themesource
