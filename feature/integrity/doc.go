// Package integrity validates the infrastructure the manifest pipeline depends on.
//
// # Checks Provided
//
//   - Structure: the storage bucket and the artifact folder exist (fixable).
//   - Artifacts: the weapon, plug and version objects of the last successful run are present.
//   - History: the run history table matches models.ManifestRun (columns, explicit types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/artifacts : Runs artifact check.
//   - GET /integrity/history : Runs history schema check.
package integrity
