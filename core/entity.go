package core

// Entity is a unique identifier for a world entity.
// Zero is never a valid entity.
type Entity uint64
