// Package schema deserializes GraphQL SDL syntax trees into core models.
//
// The package walks an already parsed document (see gqlparser's ast package)
// and produces core.Model records with resolved field types and recursively
// deserialized literal values:
//
//	document ─▶ DeserializeModel ─▶ DeserializeField ─▶ ResolveFieldType
//	                    │                   │
//	                    └──────────┬────────┘
//	                               ▼
//	                     DeserializeDirective ─▶ DeserializeValue
//
// Every operation is synchronous and side-effect free apart from the optional
// Observer callbacks. A Deserializer holds only immutable configuration, so a
// single instance can be shared by concurrent callers.
package schema
