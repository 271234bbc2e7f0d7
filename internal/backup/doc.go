// Package backup keeps snapshots of the plinks config file and the
// installation cache so that an overwrite can be undone.
//
// Each snapshot is a timestamped directory holding a copy of the file and
// a manifest.toml with its original location and SHA256 hash:
//
//	<cache dir>/backups/
//	└── {target}/
//	    └── {timestamp}/
//	        ├── manifest.toml
//	        └── config.yaml
//
// [Manager.Backup] prunes snapshots beyond the retention count (5 by
// default). [Manager.Restore] verifies the stored hash and snapshots the
// current file before replacing it, so a restore can itself be undone.
package backup
