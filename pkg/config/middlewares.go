package config

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS builds the cross-origin policy wrapped around the Echo handler.
func (c *Config) CORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: c.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
}
