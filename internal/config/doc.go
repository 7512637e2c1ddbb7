// Package config provides configuration management for patterns.
//
// Configuration is loaded from YAML files and merged in layers, with later
// layers overriding earlier ones:
//
//  1. Defaults compiled into the binary
//  2. User configuration (~/.config/patterns/config.yaml)
//  3. Project configuration (./.patterns/config.yaml)
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info        # debug, info, warn or error
//	  output: text          # text, yaml or styled
//	adapter:
//	  timeFormat: "2006-01-02 15:04:05"
//	bridge:
//	  userMessage: "Welcome aboard!"
//	  alertMessage: "CPU temperature high!"
//
// Empty values in a layer leave the value from the previous layer in place.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Bridge.UserMessage)
package config
