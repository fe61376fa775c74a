// Package option implements configuration through functional options.
package option

// Option changes a Config.
type Option[Config any] interface {
	Configure(*Config)
}

// Func turns a plain function into an Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig applies the options in order on a new Config.
// A Config with an Init method gets its defaults from it before any option is applied.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var conf Config
	if d, ok := any(&conf).(defaulter); ok {
		d.Init()
	}
	for _, o := range opts {
		o.Configure(&conf)
	}
	return conf
}

type defaulter interface{ Init() }
