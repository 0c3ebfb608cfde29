// Package banksim implements a deterministic, in-memory bank simulation. It
// replays a batch of timestamped operations against a world of users,
// accounts, cards and commerciants, and produces the resulting output
// records.
//
// The core functionalities include:
//   - Accounts and Cards: classic, savings, and business accounts in a single
//     currency each, with regular and one-time payment cards.
//   - Currency Conversion: a directed graph of declared exchange rates;
//     conversions follow the first path found, deterministically.
//   - Plans and Commissions: per-user service plans setting the commission
//     taken on outgoing payments and the cost of plan upgrades.
//   - Cashback: per-commerciant reward strategies, counted by transactions
//     or accumulated spending.
//   - Split Payments: multi-account agreements settled all-or-nothing once
//     every holder accepts.
//   - Reports: projections of users, histories, per-account activity, and
//     business associate statistics.
//
// This package serves as the foundational logic for the `bsim` command-line
// tool. Everything lives in memory for the duration of one batch; the same
// input always produces the same output.
package banksim
