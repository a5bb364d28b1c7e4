// Package httpapi provides HTTP handlers for RSA key generation, RSA-PSS signing and verification.
//
// @title RSA-PSS Signing API
// @version 1.0
// @description HTTP API for generating RSA key pairs, signing files and verifying signatures.
// @description
// @description Supports:
// @description - RSA-2048 key generation (PKCS#8 / SubjectPublicKeyInfo PEM)
// @description - SHA-256 hashing of uploaded files
// @description - RSASSA-PSS signatures (MGF1 SHA-256, maximum salt length)
// @description - Hex encoded signatures and hashes
//
// @contact.name API Support
// @contact.url https://github.com/LdDl/rsapss-api
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @externalDocs.description GitHub Repository
// @externalDocs.url https://github.com/LdDl/rsapss-api
//
// @tag.name Health
// @tag.description Health check endpoints
//
// @tag.name Keys
// @tag.description Generate RSA key pairs
//
// @tag.name Signing
// @tag.description Sign files and verify signatures
package httpapi
