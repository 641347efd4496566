package config

// DefaultFormat is the book used when FORMAT is not set
const DefaultFormat = "audiobook"
