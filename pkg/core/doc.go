// Package core defines the shared language of the leapgql system.
//
// This package contains:
//   - Domain entities (Model, Field, Directive)
//   - Field type resolution results (Primitive, Reference)
//   - The recursive literal Value union
//   - Typed errors raised while deserializing a schema document
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
