// Package models defines the core domain models for the scoreboard.
//
// # Models
//
//   - Match: a contest in progress between two named participants
//   - Result: a finished match as recorded in the result archive
//
// Participants are identified by name strings. A name can take part in at
// most one active match at a time; once that match is finished the name is
// free to start a new one.
//
// # Design Principles
//
// 1. **Values, not handles**: the registry owns every live Match. Callers get
// copies, so nothing outside the registry can change a score behind its back.
// 2. **Stable identity**: each Match carries a synthetic ID. Restarting a
// finished pairing yields a new ID and a new start time.
package models
