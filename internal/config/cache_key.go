package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// MessageStatsKey returns the cache key for contact message statistics.
func (r *CacheKeyStruct) MessageStatsKey() string {
	return "stats:messages"
}

// ChatStatsKey returns the cache key for chat usage statistics.
func (r *CacheKeyStruct) ChatStatsKey() string {
	return "stats:chat"
}

var CacheKey = NewCacheKeyStruct()
