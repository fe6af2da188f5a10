package domain

// KeyPrefix namespaces every key SoarTV writes to the document store.
const KeyPrefix = "soartv:"
