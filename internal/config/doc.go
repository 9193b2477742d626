// Package config loads composearea settings.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← COMPOSEAREA_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← composearea.toml / .yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading
//   - layer: priority-ordered layers, deep merge and dotted paths
//
// # Basic Usage
//
//	cfg, err := config.Load("composearea.toml")
//	if err != nil {
//	    return err
//	}
//	log := logging.New(logging.Config{Level: logging.ParseLevel(cfg.Logging.Level)})
//
// # Settings
//
//	logging.level       debug, info, warn or error
//	area.wrapperId      id of the element to bind to
//	area.wrapperClass   class set on the editable container
//	area.initialHtml    markup loaded into the container
//	area.noTrim         keep surrounding whitespace in extracted text
package config
