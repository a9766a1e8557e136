package contextkeys

// Custom type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle is stored in context.
const DBContextKey = contextKey("db")
