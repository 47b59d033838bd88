// Package pkg provides the core libraries for blocklink connector checking.
//
// # Overview
//
// Blocklink decides whether two blocks of a visual programming editor may be
// joined, and which join a dragged block should snap to. The pkg directory is
// organized into three areas:
//
//  1. Domain model: [block] and [geom]
//  2. Link engine: [rules] and [link]
//  3. Inputs and support: [scene], [config], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through blocklink:
//
//	scene.json                rules.toml
//	     ↓                         ↓
//	[scene] (blocks + views)   [config] (threshold + rule set)
//	     ↓                         ↓
//	         [link] Checker
//	              ↓
//	  CanLink / FindBestLink → Link
//
// # Quick Start
//
//	s, _ := scene.ImportJSON("scene.json")
//	cfg, _ := config.Load("rules.toml")
//	set, _ := cfg.RuleSet(s.Workspace().Blocks())
//
//	c := link.NewChecker(s.Workspace(), link.Options{
//	    Threshold: cfg.Threshold,
//	    Rules:     set,
//	})
//
//	v, _ := s.View("three")
//	l, _ := c.FindBestLink(v, s.Neighbors("three"))
//
// # Main Packages
//
//   - [block]: blocks, typed connectors and the workspace registry
//   - [geom]: canvas points and distances
//   - [rules]: the Rule interface, ordered rule sets and built-in rules
//   - [link]: connector classification, links and the Checker
//   - [scene]: JSON scene import and export
//   - [config]: TOML rule configuration
//   - [errors]: coded errors for user input
//   - [observability]: hooks for link and load events
//   - [buildinfo]: version information set at build time
//
// [block]: github.com/openblocks/blocklink/pkg/block
// [geom]: github.com/openblocks/blocklink/pkg/geom
// [rules]: github.com/openblocks/blocklink/pkg/rules
// [link]: github.com/openblocks/blocklink/pkg/link
// [scene]: github.com/openblocks/blocklink/pkg/scene
// [config]: github.com/openblocks/blocklink/pkg/config
// [errors]: github.com/openblocks/blocklink/pkg/errors
// [observability]: github.com/openblocks/blocklink/pkg/observability
// [buildinfo]: github.com/openblocks/blocklink/pkg/buildinfo
package pkg
