package ports

// VillageIndex maps normalized village names to their districts. The index
// is optional infrastructure: a missing mapping table degrades the resolver
// to passthrough, it never fails a request.
type VillageIndex interface {
	District(village string) (string, bool)
}
