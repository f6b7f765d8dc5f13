package schema

// SourceDirective is the reserved annotation declaring a model's data source.
// It carries a single string argument named SourceArgument.
const (
	SourceDirective = "source"
	SourceArgument  = "name"
)

// Options configures a Deserializer.
type Options struct {
	// DefaultSourceName is used for models without a source directive and as
	// the provisional source of relation fields.
	DefaultSourceName string
	// Naming resolves raw directive names. Defaults to PlainNaming.
	Naming NamingStrategy
	// Observer is notified as documents and models are processed. Defaults to a no-op.
	Observer Observer
}

// Deserializer converts schema syntax trees into core models.
type Deserializer struct {
	defaultSource string
	naming        NamingStrategy
	observer      Observer
}

// New creates a Deserializer with the given options.
func New(opts Options) *Deserializer {
	d := &Deserializer{
		defaultSource: opts.DefaultSourceName,
		naming:        opts.Naming,
		observer:      opts.Observer,
	}
	if d.naming == nil {
		d.naming = PlainNaming
	}
	if d.observer == nil {
		d.observer = NopObserver{}
	}
	return d
}

// DefaultSourceName returns the configured default source name.
func (d *Deserializer) DefaultSourceName() string {
	return d.defaultSource
}
