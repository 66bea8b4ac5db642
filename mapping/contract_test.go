package mapping_test

import (
	"github.com/WithPrecedent/camina/bunch"
	"github.com/WithPrecedent/camina/mapping"
)

// Compile-time checks that the containers honor the bunch contract. Catalog
// and Chain deliberately diverge on Delete and so satisfy only Store.
var (
	_ bunch.Bunch[string, int] = (*mapping.Dictionary[string, int])(nil)
	_ bunch.Bunch[string, int] = (*mapping.Repository[int])(nil)
	_ bunch.Store[string, int] = (*mapping.Catalog[string, int])(nil)
	_ bunch.Store[string, int] = (*mapping.Chain[string, int])(nil)
)
