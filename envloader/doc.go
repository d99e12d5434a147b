// Package envloader fills configuration structs from environment variables
// using struct tags, the way Lambda functions receive their settings.
//
//	type Config struct {
//		TableName string `env:"BOOKS_TABLE_NAME,required"`
//		Stage     string `env:"STAGE" envDefault:"dev"`
//		Port      int    `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg Config
//	if err := envloader.Load(&cfg); err != nil { ... }
//
// Supported field types: string, bool, ints, uints and floats. Nested
// structs are traversed recursively.
package envloader
