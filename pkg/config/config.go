// Package config loads link-checker settings from TOML.
//
// A configuration names the proximity threshold and an ordered list of rules:
//
//	threshold = 20.0
//
//	[[rules]]
//	name = "types"
//	kind = "type-match"
//	mandatory = true
//
//	[[rules]]
//	kind = "genus-filter"
//	deny = ["comment"]
//
// Rule order in the file is evaluation order. The mandatory key overrides
// the default of the rule kind.
package config

import (
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/errors"
	"github.com/openblocks/blocklink/pkg/link"
	"github.com/openblocks/blocklink/pkg/observability"
	"github.com/openblocks/blocklink/pkg/rules"
)

// Rule kinds understood by [Config.RuleSet].
const (
	KindTypeMatch   = "type-match"
	KindShapeMatch  = "shape-match"
	KindGenusFilter = "genus-filter"
	KindAlways      = "always"
	KindNever       = "never"
)

// Kinds lists the supported rule kinds in documentation order.
var Kinds = []string{KindTypeMatch, KindShapeMatch, KindGenusFilter, KindAlways, KindNever}

// Config is the decoded configuration file.
type Config struct {
	Threshold float64      `toml:"threshold"`
	Rules     []RuleConfig `toml:"rules"`
}

// RuleConfig describes one rule entry.
type RuleConfig struct {
	Name      string   `toml:"name"`
	Kind      string   `toml:"kind"`
	Mandatory *bool    `toml:"mandatory"`
	Deny      []string `toml:"deny"`
}

// Default returns the configuration used when no file is given: the
// default threshold, a mandatory type match and an advisory shape match.
func Default() *Config {
	return &Config{
		Threshold: link.DefaultThreshold,
		Rules: []RuleConfig{
			{Kind: KindTypeMatch},
			{Kind: KindShapeMatch},
		},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	start := time.Now()
	cfg, err := load(path)
	items := 0
	if cfg != nil {
		items = len(cfg.Rules)
	}
	observability.Load().OnLoad("config", path, items, time.Since(start), err)
	return cfg, err
}

func load(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates TOML configuration data. Keys the decoder
// does not recognize are rejected so that typos surface early.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the threshold and every rule entry.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "threshold must not be negative, got %g", c.Threshold)
	}
	for i, rc := range c.Rules {
		if err := rc.validate(); err != nil {
			return errors.Within(err, "rules[%d]", i)
		}
	}
	return nil
}

func (rc RuleConfig) validate() error {
	if err := errors.ValidateRuleKind(rc.Kind); err != nil {
		return err
	}
	if !isKnownKind(rc.Kind) {
		return errors.New(errors.ErrCodeUnknownRule, "unknown rule kind %q", rc.Kind)
	}
	if rc.Name != "" {
		if err := errors.ValidateRuleName(rc.Name); err != nil {
			return err
		}
	}
	if len(rc.Deny) > 0 && rc.Kind != KindGenusFilter {
		return errors.New(errors.ErrCodeInvalidConfig, "deny is only valid for %s rules", KindGenusFilter)
	}
	return nil
}

func isKnownKind(kind string) bool {
	return slices.Contains(Kinds, kind)
}

// RuleSet builds the rule set described by the configuration. Genus filters
// are seeded with existing, the blocks already in the workspace they will
// observe.
func (c *Config) RuleSet(existing []*block.Block) (*rules.Set, error) {
	set := rules.NewSet()
	for i, rc := range c.Rules {
		r, err := rc.build(existing)
		if err != nil {
			return nil, errors.Within(err, "rules[%d]", i)
		}
		if err := set.Add(r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "rules[%d]", i)
		}
	}
	return set, nil
}

func (rc RuleConfig) build(existing []*block.Block) (rules.Rule, error) {
	var (
		r    rules.Rule
		base *rules.Base
	)
	switch rc.Kind {
	case KindTypeMatch:
		tm := rules.NewTypeMatch()
		r, base = tm, &tm.Base
	case KindShapeMatch:
		sm := rules.NewShapeMatch()
		r, base = sm, &sm.Base
	case KindGenusFilter:
		gf := rules.NewGenusFilter(rc.Deny...)
		gf.Seed(existing)
		r, base = gf, &gf.Base
	case KindAlways:
		fr := rules.Always()
		r, base = fr, &fr.Base
	case KindNever:
		fr := rules.Never()
		r, base = fr, &fr.Base
	default:
		return nil, errors.New(errors.ErrCodeUnknownRule, "unknown rule kind %q", rc.Kind)
	}
	if rc.Name != "" {
		base.RuleName = rc.Name
	}
	if rc.Mandatory != nil {
		base.Required = *rc.Mandatory
	}
	return r, nil
}
