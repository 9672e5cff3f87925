// Package cambio provides the building blocks of a currency converter: a country and
// currency directory with a search-and-select picker, amount conversion, rate charts,
// and quotation snapshots.
//
// The core is the picker, in three stages:
//   - Directory Loading: a Directory fetches raw records from a Source once, normalizes
//     them into Entity values (localized name, region code, first listed currency),
//     drops duplicates and sorts them by name with the pt-BR collation.
//   - Filtering: Filter matches a free-text query against names (ignoring case and
//     diacritics), region codes and currency codes, then ranks exact currency matches first.
//   - Selection: a Selector holds the search state and hands the picked Entity to a callback.
//
// Remote sources live in their own packages (restcountries, awesomeapi, exchangerate),
// persistence in store and watchlist, and the `cbx` command line tool in cmd.
package cambio
