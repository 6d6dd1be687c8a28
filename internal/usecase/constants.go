package usecase

// Cache tags invalidated by the boundary after successful mutations.
const (
	// ResourceListTag covers every cached resource listing.
	ResourceListTag = "resources"
)

// ResourceTag returns the cache tag scoped to one resource.
func ResourceTag(id string) string {
	return "resource:" + id
}
