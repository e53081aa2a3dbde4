// Package divtrack reconciles dividend payment time-series from multiple
// sources and projects future payments. It is designed to be local-first and
// auditable: every history is a plain, git-friendly JSON file, and files are
// only rewritten when their content actually changed.
//
// The core functionalities include:
//   - Record Merging: Combining auto-collected feed records with manual
//     corrections into one canonical, date-sorted event sequence per
//     instrument, without ever losing a manual value to feed data.
//   - Interval Classification: Inferring the payment cadence (weekly,
//     monthly, quarterly, annual) from the gaps between recent payments,
//     using tolerance bands so real-world jitter does not break detection.
//   - Forward Projection: Extrapolating future payment dates from the last
//     confirmed payment, adjusted backward to business days using per-market
//     holiday calendars.
//   - Yield Calculation: Annotating every confirmed payment with its trailing
//     12-month yield against that day's reference price.
//
// This package serves as the foundational logic for the `dvt` command-line
// tool, ensuring that all operations are consistent and deterministic.
package divtrack
