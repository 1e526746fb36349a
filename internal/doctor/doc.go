// Package doctor diagnoses why gitlink cannot build a link.
//
// Checks are grouped into three categories:
//
//   - [CategoryConfig]: the global config file parses and validates
//   - [CategoryRepository]: the directory is in a repository with a remote
//     on a known provider, and .gitlink.toml (if any) is valid
//   - [CategoryEnvironment]: git, a clipboard and a browser opener are available
//
// # Usage
//
//	report := doctor.Diagnose(ctx, doctor.Options{Dir: wd, ConfigPath: path})
//	doctor.Print(out, report)
//
// Failures stop links from being built; warnings only disable a feature.
package doctor
