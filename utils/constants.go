package utils

// DraftCachePrefix is the prefix used for Redis order-draft keys.
const DraftCachePrefix = "orderDraft:"

// CatalogCacheKey is the Redis key holding the cached catalog document.
const CatalogCacheKey = "catalog:categories"
