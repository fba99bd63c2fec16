// Package finanzas analyses a snapshot of personal finances: budget categories,
// transactions, debts, savings goals and investments.
//
// The core functionalities include:
//   - Nauta Index: a 0-100 financial health score built from five components
//     (emergency fund, savings rate, toxic debts, insurance and retirement).
//   - Net worth: savings plus investments minus debt balances, with daily snapshots
//     recorded through a Store.
//   - Ratios: debt-to-income, savings rate, debt service and emergency fund coverage.
//   - Insights: prioritised advice about overspending, savings and toxic debts.
//   - Cashflow: month-over-month comparison of transactions and a twelve month
//     projection of income, expenses and debt payments.
//
// Every calculation is a pure function of a Data snapshot, a Converter and a display
// currency. Amounts in another currency are converted before they are summed.
//
// This package serves as the foundational logic for the `fin` command-line tool.
package finanzas
