// Package manifest extracts weapons and their plugs from the remote item manifest.
//
// A run is a short sequential pipeline:
//  1. Index: fetch the index document and read its version (Fetcher.FetchIndex).
//  2. Version gate: compare with the stored token (ShouldProcess, Tracker).
//  3. Fetch: download the item table, plus the plug-set table when configured (Fetcher.FetchDefinitions).
//  4. Classify: keep named Legendary/Exotic weapons and normalise them (Classify).
//  5. Resolve: collect the plug closure one hop beyond the sockets (ResolvePlugs).
//  6. Write: upload weapons.json and plugs.json, then version.txt last (Writer.Write).
//
// Fatal errors wrap ErrManifestUnavailable, ErrDefinitionFetchFailed or ErrStorageWriteFailed
// inside a StageError naming the failed stage. Dangling plug-set references and plugs without
// display metadata are skipped silently.
//
// # HTTP Endpoints
//
//   - GET /manifest/status : stored version and latest run.
//   - POST /manifest/sync : run the pipeline (supports ?force=true).
//   - GET /manifest/runs : recent runs (requires the history database).
//   - GET /manifest/weapons : the stored weapon artifact.
//   - GET /manifest/plugs/:hash : one record of the stored plug closure.
package manifest
