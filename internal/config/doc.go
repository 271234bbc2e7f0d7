// Package config provides configuration management for the plinks CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/plinks/config.yaml.
// A config.yaml in the working directory takes precedence. The file uses
// YAML format with the following structure:
//
//	version: 1
//	prompt: fuzzy          # fuzzy | numbered
//	portable: false        # keep the cache next to the executable
//	cache_file: ""         # explicit cache location
//	scan_paths:
//	  - /opt/firefox-nightly
//	families:
//	  firefox:
//	    registry_file: ~/.mozilla/firefox/profiles.ini
//	custom:
//	  - name: Floorp
//	    executable: floorp
//	    args: ["-P", "{profile}", "--new-tab", "{uri}"]
//	    profile_index: 1
//	    uri_index: 3
//	    profiles:
//	      - {name: Work, path: /data/work}
//
// Every key can be overridden from the environment with the PLINKS_ prefix,
// e.g. PLINKS_PROMPT=numbered.
//
// # Validation
//
// [Validate] returns one error per offending field:
//
//	errs := config.Validate(cfg)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
//
// Custom definitions must name a registry file or static profiles, and
// their argument template indices must be distinct and in range.
package config
