// SPDX-License-Identifier: MIT

// Package dataset reads ranking rounds from JSON or YAML files and writes
// ranking reports as JSON.
//
// A round file lists the item set and the judgments collected for it:
//
//	items: [deploy, docs, refactor]
//	preferences:
//	  - {target: deploy, source: docs, value: 1}
//	  - {target: refactor, source: docs, value: 0.75}
//
// The format is picked from the file extension (.json, .yaml, .yml).
package dataset
