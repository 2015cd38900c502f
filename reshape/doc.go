// Package reshape contains the pure transformations applied to fetched WRC
// records: itinerary flattening, name/code lookups, the car-data projection,
// wide-format pivots, and split-time extraction.
//
// Nothing here performs I/O. Lookups that find nothing return a comma-ok
// false or a nil pointer; an error always means the input itself was
// unusable (e.g. an entry missing a nested record).
package reshape
