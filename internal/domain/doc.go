// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (key material handles) and contracts (interfaces) only.
package domain
