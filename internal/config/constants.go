package config

// DefaultPort is the port the API listens on when PORT is unset.
const DefaultPort = 8190
