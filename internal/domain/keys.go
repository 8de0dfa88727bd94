package domain

// KeyPrefix namespaces every key the service writes to the key-value store.
const KeyPrefix = "cardindex:"
