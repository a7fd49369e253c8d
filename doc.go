// Package carteira provides the types and functions for tracking a personal
// investment portfolio built from periodic contributions. It is local-first:
// all data lives as plain JSON documents in a directory the user owns, and
// every report is recomputed from that record.
//
// The core functionalities include:
//   - Asset Registry: Tracking holdings under five asset classes, each tied to
//     one of two accounting models. Unit-based classes (stocks, real-estate
//     funds, local ETFs) carry a quantity and a weighted average cost;
//     value-based classes (foreign ETFs, crypto) carry an accumulated amount.
//   - Contribution History: Recording each investment round with its planned
//     amount, its executed allocations, and the variance between the two.
//     Allocation lines denormalize the asset's name and class so history stays
//     readable after assets are renamed or deleted.
//   - Valuation Replay: A stateless engine that folds the contribution history
//     into a month-by-month series of per-class and total valuations, carrying
//     positions forward across months without activity.
//   - Data Persistence: Encoding and decoding the collections as indented
//     JSON, plus import from and export to the backup dialect of the browser
//     app this tool succeeded.
//
// This package serves as the foundational logic for the `aporte` command-line
// tool, ensuring that every command operates on the same single source of truth.
package carteira
